package documents_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"studyshare/internal/categorizer"
	"studyshare/internal/documents"
	"studyshare/pkg/domain"
	"studyshare/pkg/metrics"
	"studyshare/pkg/pagination"
	"studyshare/pkg/ratelimit"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"testing"
	"time"

	mockcategorizer "studyshare/internal/categorizer/mock"
	mockobjectstore "studyshare/pkg/objectstore/mock"
	mockstorage "studyshare/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDocuments struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	objects *mockobjectstore.MockStore
	ai      *mockcategorizer.MockCategorizer
	svc     documents.Documents
}

func newTestDocuments(t *testing.T, limiter *ratelimit.Keyed) *testDocuments {
	t.Helper()

	ctrl := gomock.NewController(t)
	td := &testDocuments{
		ctrl:    ctrl,
		storage: mockstorage.NewMockStorage(ctrl),
		objects: mockobjectstore.NewMockStore(ctrl),
		ai:      mockcategorizer.NewMockCategorizer(ctrl),
	}
	if limiter == nil {
		limiter = ratelimit.New(0, 0)
	}
	td.svc = documents.New(td.storage, td.objects, td.ai, limiter, metrics.Noop(), documents.Options{
		MaxUploadBytes: 10 << 20,
		PresignTTL:     15 * time.Minute,
		MaxAttempts:    4,
	})

	return td
}

// expectWithTx wires Storage.WithTx to run the callback with a MockAllStorage.
func (td *testDocuments) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	td.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(td.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func validMeta() documents.Metadata {
	return documents.Metadata{
		Title:   "  Maths past paper 2019 ",
		Subject: "Maths",
		Medium:  "Sinhala medium",
		DocType: "past paper",
		Year:    2019,
	}
}

func TestMetadata_Validate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	meta := validMeta()
	require.NoError(t, meta.Validate(now))
	require.Equal(t, "Maths past paper 2019", meta.Title)
	require.Equal(t, domain.SubjectMathematics, meta.Subject)
	require.Equal(t, domain.MediumSinhala, meta.Medium)
	require.Equal(t, domain.DocTypePastPaper, meta.DocType)

	bad := documents.Metadata{Title: "ab", Subject: "astrology", Medium: "french", DocType: "poster", Year: 2030}
	err := bad.Validate(now)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	var serr *serrors.Error
	require.ErrorAs(t, err, &serr)
	fields := make([]string, 0)
	for _, f := range serr.Fields() {
		fields = append(fields, f.Field)
	}
	require.ElementsMatch(t, []string{"title", "subject", "medium", "docType", "year"}, fields)
}

func TestCategorize(t *testing.T) {
	td := newTestDocuments(t, nil)
	pdf := textPDF(t, "Grade 11 Science")

	td.ai.EXPECT().Categorize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in categorizer.Input) domain.Categorization {
			require.Equal(t, "science.pdf", in.FileName)
			require.Equal(t, pdf, in.PDF)
			require.Equal(t, "hint", in.Hint)

			return domain.Categorization{Subject: domain.SubjectScience, Title: "Science"}
		})

	res, err := td.svc.Categorize(context.Background(), "user_1",
		[]documents.File{{Name: "science.pdf", Data: pdf}}, "hint")
	require.NoError(t, err)
	require.Equal(t, domain.SubjectScience, res.Subject)
}

func TestCategorize_RateLimited(t *testing.T) {
	td := newTestDocuments(t, ratelimit.New(1, 1))
	pdf := textPDF(t, "x")

	td.ai.EXPECT().Categorize(gomock.Any(), gomock.Any()).Return(domain.Categorization{}).Times(1)

	_, err := td.svc.Categorize(context.Background(), "user_1", []documents.File{{Name: "a.pdf", Data: pdf}}, "")
	require.NoError(t, err)
	_, err = td.svc.Categorize(context.Background(), "user_1", []documents.File{{Name: "a.pdf", Data: pdf}}, "")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestUpload(t *testing.T) {
	td := newTestDocuments(t, nil)
	pdf := textPDF(t, "page one", "page two")
	docID := uuid.New()

	var key string
	td.objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(len(pdf)), "application/pdf").DoAndReturn(
		func(_ context.Context, k string, r io.Reader, _ int64, _ string) error {
			require.True(t, strings.HasPrefix(k, "documents/"), k)
			require.True(t, strings.HasSuffix(k, ".pdf"), k)
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, pdf, b)
			key = k

			return nil
		})
	td.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc domain.Document) (*domain.Document, error) {
				require.Equal(t, domain.UserID("user_1"), doc.UploaderID)
				require.Equal(t, "Maths past paper 2019", doc.Title)
				require.Equal(t, domain.SubjectMathematics, doc.Subject)
				require.Equal(t, domain.DocumentStatusPending, doc.Status)
				require.Equal(t, key, doc.FileKey)
				require.Equal(t, "paper.pdf", doc.FileName)
				require.Equal(t, 2, doc.PageCount)
				doc.ID = domain.DocumentID(docID)

				return &doc, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(documents.ReviewJobArgs)
				require.True(t, ok)
				require.Equal(t, docID, job.DocumentID)
				require.Equal(t, 4, job.InsertOpts().MaxAttempts)

				return true, nil
			})
	})

	doc, err := td.svc.Upload(context.Background(), "user_1", []documents.File{{Name: "paper.pdf", Data: pdf}}, validMeta())
	require.NoError(t, err)
	require.Equal(t, domain.DocumentID(docID), doc.ID)
}

func TestUpload_TxFailureRemovesObject(t *testing.T) {
	td := newTestDocuments(t, nil)
	pdf := textPDF(t, "x")

	var key string
	td.objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, k string, _ io.Reader, _ int64, _ string) error {
			key = k

			return nil
		})
	td.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDocument(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	})
	td.objects.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k string) error {
		require.Equal(t, key, k)

		return nil
	})

	_, err := td.svc.Upload(context.Background(), "user_1", []documents.File{{Name: "a.pdf", Data: pdf}}, validMeta())
	require.Error(t, err)
}

func TestUpload_InvalidMetadataStoresNothing(t *testing.T) {
	td := newTestDocuments(t, nil)

	meta := validMeta()
	meta.Title = ""
	_, err := td.svc.Upload(context.Background(), "user_1",
		[]documents.File{{Name: "a.pdf", Data: textPDF(t, "x")}}, meta)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestList(t *testing.T) {
	td := newTestDocuments(t, nil)

	filter := domain.DocumentFilter{Subject: domain.SubjectScience, Sort: domain.SortTopVoted, Query: " cells "}
	td.storage.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), domain.UserID("user_1"), pagination.Page{Limit: 1}).
		DoAndReturn(func(_ context.Context, f domain.DocumentFilter, _ domain.UserID, _ pagination.Page) ([]domain.Document, error) {
			require.Equal(t, "cells", f.Query)

			return []domain.Document{{Title: "a"}, {Title: "b"}}, nil
		})

	res, next, err := td.svc.List(context.Background(), "user_1", filter, "", 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, pagination.Encode(1), next)

	_, _, err = td.svc.List(context.Background(), "", domain.DocumentFilter{Sort: "random"}, "", 1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestGet_Visibility(t *testing.T) {
	pending := &domain.Document{UploaderID: "owner", Status: domain.DocumentStatusPending}
	approved := &domain.Document{UploaderID: "owner", Status: domain.DocumentStatusApproved}

	tests := []struct {
		name   string
		doc    *domain.Document
		viewer *domain.User
		found  bool
	}{
		{name: "approved anonymous", doc: approved, found: true},
		{name: "pending anonymous", doc: pending},
		{name: "pending other user", doc: pending, viewer: &domain.User{ID: "other", Role: domain.RoleUser}},
		{name: "pending owner", doc: pending, viewer: &domain.User{ID: "owner"}, found: true},
		{name: "pending admin", doc: pending, viewer: &domain.User{ID: "admin", Role: domain.RoleAdmin}, found: true},
		{name: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := newTestDocuments(t, nil)
			td.storage.EXPECT().DocumentByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.doc, nil)

			doc, err := td.svc.Get(context.Background(), tt.viewer, domain.DocumentID(uuid.New()))
			if tt.found {
				require.NoError(t, err)
				require.NotNil(t, doc)
			} else {
				require.ErrorIs(t, err, serrors.ErrNotFound)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	td := newTestDocuments(t, nil)
	id := domain.DocumentID(uuid.New())

	td.storage.EXPECT().DocumentByID(gomock.Any(), id, domain.UserID("")).Return(&domain.Document{
		ID: id, Status: domain.DocumentStatusApproved, FileKey: "documents/x.pdf", FileName: "maths.pdf",
	}, nil)
	td.objects.EXPECT().PresignGet(gomock.Any(), "documents/x.pdf", "maths.pdf", 15*time.Minute).
		Return("https://r2.example.com/x?sig=1", nil)
	td.storage.EXPECT().IncrementDownloads(gomock.Any(), id).Return(nil)

	dl, err := td.svc.Download(context.Background(), nil, id)
	require.NoError(t, err)
	require.Equal(t, "https://r2.example.com/x?sig=1", dl.URL)
	require.Equal(t, "maths.pdf", dl.FileName)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), dl.ExpiresAt, time.Minute)
}

func TestVote(t *testing.T) {
	id := domain.DocumentID(uuid.New())

	t.Run("counts", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(&domain.Document{
				ID: id, UploaderID: "owner", Status: domain.DocumentStatusApproved,
			}, nil)
			tx.EXPECT().SetVote(gomock.Any(), id, domain.UserID("voter"), 1).
				Return(domain.VoteTally{Upvotes: 3, MyVote: 1}, nil)
		})

		tally, err := td.svc.Vote(context.Background(), "voter", id, 1)
		require.NoError(t, err)
		require.Equal(t, 3, tally.Upvotes)
		require.Equal(t, 1, tally.MyVote)
	})

	t.Run("own document", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(&domain.Document{
				ID: id, UploaderID: "owner", Status: domain.DocumentStatusApproved,
			}, nil)
		})

		_, err := td.svc.Vote(context.Background(), "owner", id, -1)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("pending document", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(&domain.Document{
				ID: id, UploaderID: "owner", Status: domain.DocumentStatusPending,
			}, nil)
		})

		_, err := td.svc.Vote(context.Background(), "voter", id, 1)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("invalid value", func(t *testing.T) {
		td := newTestDocuments(t, nil)

		_, err := td.svc.Vote(context.Background(), "voter", id, 2)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestFlag(t *testing.T) {
	id := domain.DocumentID(uuid.New())
	approved := &domain.Document{ID: id, UploaderID: "owner", Status: domain.DocumentStatusApproved}

	t.Run("stored", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, gomock.Any()).Return(approved, nil)
		td.storage.EXPECT().StoreFlag(gomock.Any(), domain.Flag{DocumentID: id, UserID: "u", Reason: "wrong answers"}).
			Return(&domain.Flag{DocumentID: id, UserID: "u", Reason: "wrong answers"}, true, nil)

		flag, err := td.svc.Flag(context.Background(), "u", id, "  wrong answers ")
		require.NoError(t, err)
		require.Equal(t, "wrong answers", flag.Reason)
	})

	t.Run("duplicate", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, gomock.Any()).Return(approved, nil)
		td.storage.EXPECT().StoreFlag(gomock.Any(), gomock.Any()).Return(&domain.Flag{}, false, nil)

		_, err := td.svc.Flag(context.Background(), "u", id, "wrong answers")
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("short reason", func(t *testing.T) {
		td := newTestDocuments(t, nil)

		_, err := td.svc.Flag(context.Background(), "u", id, "bad")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("own document", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, gomock.Any()).Return(approved, nil)

		_, err := td.svc.Flag(context.Background(), "owner", id, "wrong answers")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestDelete(t *testing.T) {
	id := domain.DocumentID(uuid.New())
	doc := &domain.Document{ID: id, UploaderID: "owner", Status: domain.DocumentStatusApproved}

	t.Run("owner", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, domain.UserID("owner")).Return(doc, nil)
		td.storage.EXPECT().SoftDeleteDocument(gomock.Any(), id).Return(doc, nil)

		require.NoError(t, td.svc.Delete(context.Background(), &domain.User{ID: "owner"}, id))
	})

	t.Run("admin", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, gomock.Any()).Return(doc, nil)
		td.storage.EXPECT().SoftDeleteDocument(gomock.Any(), id).Return(doc, nil)

		require.NoError(t, td.svc.Delete(context.Background(), &domain.User{ID: "mod", Role: domain.RoleAdmin}, id))
	})

	t.Run("someone else", func(t *testing.T) {
		td := newTestDocuments(t, nil)
		td.storage.EXPECT().DocumentByID(gomock.Any(), id, gomock.Any()).Return(doc, nil)

		err := td.svc.Delete(context.Background(), &domain.User{ID: "other"}, id)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestMyUploads(t *testing.T) {
	td := newTestDocuments(t, nil)

	td.storage.EXPECT().UserDocuments(gomock.Any(), domain.UserID("u"), domain.DocumentStatusRejected,
		pagination.Page{Limit: pagination.DefaultLimit}).Return([]domain.Document{{Title: "a"}}, nil)

	res, next, err := td.svc.MyUploads(context.Background(), "u", domain.DocumentStatusRejected, "", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Empty(t, next)

	_, _, err = td.svc.MyUploads(context.Background(), "u", "archived", "", 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
