package documents

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ReviewJobArgs contains the arguments for the automatic review of an
// uploaded document.
type ReviewJobArgs struct {
	// DocumentID is marked unique so a document is reviewed once at a time.
	DocumentID uuid.UUID `json:"document_id" river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the review worker.
func (args ReviewJobArgs) Kind() string { return "ReviewDocumentJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args ReviewJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		Queue:       QueueReview,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// QueueReview is the River queue review jobs run on.
const QueueReview = "review"

// NewReviewJob builds review job arguments for id.
func NewReviewJob(id uuid.UUID, maxAttempts int) ReviewJobArgs {
	return ReviewJobArgs{DocumentID: id, maxAttempts: maxAttempts}
}
