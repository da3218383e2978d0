package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the rows they refer to.
type JobStorage interface {
	// AddJob inserts a job, inside the surrounding transaction if there is
	// one. It returns false when an identical unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
