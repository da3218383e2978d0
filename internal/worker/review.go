package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"studyshare/internal/categorizer"
	"studyshare/internal/documents"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/objectstore"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// defaultSnooze is used when the gateway rate limits without telling when
// the window resets.
const defaultSnooze = 30 * time.Second

const maxFlagReason = 500

// ReviewDocumentWorker screens freshly uploaded documents with the model and
// stores the verdict. Documents that look inappropriate or are not study
// material get a system flag so they show up in the flagged section once
// approved.
//
// Calls to the model share the gateway's rate limit through a budget, so a
// burst of uploads never fires more requests than the gateway allows. A job
// that is rate limited anyway is snoozed until the window resets.
type ReviewDocumentWorker struct {
	river.WorkerDefaults[documents.ReviewJobArgs]

	storage     storage.Storage
	objects     objectstore.Store
	categorizer categorizer.Categorizer
	maxBytes    int64
	budget      *budget
}

// NewReviewDocumentWorker creates the review worker. Files larger than
// maxBytes are not read.
func NewReviewDocumentWorker(storage storage.Storage,
	objects objectstore.Store,
	categorizer categorizer.Categorizer,
	maxBytes int64) *ReviewDocumentWorker {
	return &ReviewDocumentWorker{
		storage:     storage,
		objects:     objects,
		categorizer: categorizer,
		maxBytes:    maxBytes,
		budget:      newBudget(),
	}
}

func (w *ReviewDocumentWorker) Work(ctx context.Context, job *river.Job[documents.ReviewJobArgs]) error {
	ID := domain.DocumentID(job.Args.DocumentID)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("documentID", ID))

	doc, err := w.storage.DocumentByID(ctx, ID, "")
	if err != nil {
		return fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil {
		logger.Warn(ctx, "document of review job is gone")

		return river.JobCancel(serrors.With(serrors.ErrNotFound, "document not found")) //nolint: wrapcheck
	}
	if !doc.Review.ReviewedAt.IsZero() {
		logger.Info(ctx, "document already reviewed")

		return nil
	}

	data, err := w.read(ctx, doc.FileKey)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			logger.Error(ctx, "document file cannot be reviewed", zap.String("key", doc.FileKey), zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		return err
	}

	if err := w.budget.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	review, rl, err := w.categorizer.ReviewDocument(ctx, categorizer.Input{FileName: doc.FileName, PDF: data})
	w.budget.finished(ctx, rl)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			dur := defaultSnooze
			if !rl.ResetAt.IsZero() {
				dur = max(time.Until(rl.ResetAt), 0)
			}
			logger.Warn(ctx, "review rate limited, snoozing", zap.Duration("snooze", dur))

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in reviewing document", zap.Error(err))

		return fmt.Errorf("could not review document: %w", err)
	}

	err = w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateDocument(ctx, ID, storage.DocumentUpdates{Review: &review})
		if err != nil {
			return fmt.Errorf("could not store review: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "document not found")
		}

		reason := flagReason(review)
		if reason == "" {
			return nil
		}
		if _, _, err := tx.StoreFlag(ctx, domain.Flag{
			DocumentID: ID,
			UserID:     domain.SystemUserID,
			Reason:     reason,
		}); err != nil {
			return fmt.Errorf("could not flag document: %w", err)
		}

		return nil
	})
	if errors.Is(err, serrors.ErrNotFound) {
		return river.JobCancel(err) //nolint: wrapcheck
	}
	if err != nil {
		logger.Error(ctx, "error in storing review", zap.Error(err))

		return fmt.Errorf("could not store review: %w", err)
	}

	logger.Info(ctx, "document reviewed",
		zap.String("verdict", string(review.Verdict)),
		zap.Bool("studyMaterial", review.IsStudyMaterial))

	return nil
}

func (w *ReviewDocumentWorker) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := w.objects.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("could not get document file: %w", err)
	}
	defer obj.Body.Close() //nolint: errcheck

	if w.maxBytes > 0 && obj.Size > w.maxBytes {
		return nil, serrors.With(serrors.ErrBadRequest, "document file is larger than %d bytes", w.maxBytes)
	}

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read document file: %w", err)
	}

	return data, nil
}

// flagReason returns the system flag reason for a review, or an empty
// string when the document needs no flag.
func flagReason(review domain.Review) string {
	var reason string
	switch {
	case review.Verdict == domain.VerdictInappropriate:
		reason = "Automatic review: content looks inappropriate"
	case !review.IsStudyMaterial:
		reason = "Automatic review: does not look like study material"
	default:
		return ""
	}
	if review.Reason != "" {
		reason += ". " + review.Reason
	}
	if r := []rune(reason); len(r) > maxFlagReason {
		reason = string(r[:maxFlagReason])
	}

	return reason
}
