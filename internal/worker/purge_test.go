package worker_test

import (
	"context"
	"errors"
	"fmt"
	"studyshare/internal/worker"
	"studyshare/pkg/domain"
	"testing"
	"time"

	mockobjectstore "studyshare/pkg/objectstore/mock"
	mockstorage "studyshare/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func deletedDocs(n int) []domain.Document {
	docs := make([]domain.Document, n)
	for i := range docs {
		docs[i] = domain.Document{
			ID:      domain.DocumentID(uuid.New()),
			FileKey: fmt.Sprintf("documents/%d.pdf", i),
		}
	}

	return docs
}

func TestPurgeDeletedWorker_PurgesInBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	objects := mockobjectstore.NewMockStore(ctrl)
	w := worker.NewPurgeDeletedWorker(store, objects, 24*time.Hour)

	first, second := deletedDocs(100), deletedDocs(2)
	start := time.Now()
	gomock.InOrder(
		store.EXPECT().DeletedDocuments(gomock.Any(), gomock.Any(), uint(100)).DoAndReturn(
			func(_ context.Context, before time.Time, _ uint) ([]domain.Document, error) {
				require.WithinDuration(t, start.Add(-24*time.Hour), before, time.Minute)

				return first, nil
			}),
		store.EXPECT().DeletedDocuments(gomock.Any(), gomock.Any(), uint(100)).Return(second, nil),
	)
	for _, doc := range append(first, second...) {
		objects.EXPECT().Delete(gomock.Any(), doc.FileKey).Return(nil)
		store.EXPECT().PurgeDocument(gomock.Any(), doc.ID).Return(nil)
	}

	require.NoError(t, w.Work(context.Background(), makeJob(9, worker.PurgeJobArgs{})))
}

func TestPurgeDeletedWorker_KeepsRowWhenFileDeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	objects := mockobjectstore.NewMockStore(ctrl)
	w := worker.NewPurgeDeletedWorker(store, objects, time.Hour)

	docs := deletedDocs(1)
	store.EXPECT().DeletedDocuments(gomock.Any(), gomock.Any(), uint(100)).Return(docs, nil)
	objects.EXPECT().Delete(gomock.Any(), docs[0].FileKey).Return(errors.New("r2 down"))

	require.Error(t, w.Work(context.Background(), makeJob(9, worker.PurgeJobArgs{})))
}
