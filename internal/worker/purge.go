package worker

import (
	"context"
	"fmt"
	"studyshare/pkg/logger"
	"studyshare/pkg/objectstore"
	"studyshare/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// purgeBatch is the number of documents purged per query.
const purgeBatch = 100

// PurgeJobArgs triggers a sweep of soft-deleted documents.
type PurgeJobArgs struct{}

// Kind returns the River job kind used to register and dispatch the purge worker.
func (PurgeJobArgs) Kind() string { return "PurgeDeletedJob" }

// PurgeDeletedWorker removes the files and rows of documents that were
// soft deleted longer than the retention ago.
type PurgeDeletedWorker struct {
	river.WorkerDefaults[PurgeJobArgs]

	storage   storage.Storage
	objects   objectstore.Store
	retention time.Duration
	now       func() time.Time
}

// NewPurgeDeletedWorker creates the purge worker.
func NewPurgeDeletedWorker(storage storage.Storage,
	objects objectstore.Store,
	retention time.Duration) *PurgeDeletedWorker {
	return &PurgeDeletedWorker{
		storage:   storage,
		objects:   objects,
		retention: retention,
		now:       time.Now,
	}
}

func (w *PurgeDeletedWorker) Work(ctx context.Context, job *river.Job[PurgeJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	before := w.now().Add(-w.retention)

	purged := 0
	for {
		docs, err := w.storage.DeletedDocuments(ctx, before, purgeBatch)
		if err != nil {
			return fmt.Errorf("could not get deleted documents: %w", err)
		}

		for _, doc := range docs {
			if err := w.objects.Delete(ctx, doc.FileKey); err != nil {
				logger.Error(ctx, "error in deleting document file",
					zap.Stringer("documentID", doc.ID), zap.Error(err))

				return fmt.Errorf("could not delete document file: %w", err)
			}
			if err := w.storage.PurgeDocument(ctx, doc.ID); err != nil {
				return fmt.Errorf("could not purge document: %w", err)
			}
			purged++
		}

		if len(docs) < purgeBatch {
			break
		}
	}

	if purged > 0 {
		logger.Info(ctx, "purged deleted documents", zap.Int("count", purged))
	}

	return nil
}
