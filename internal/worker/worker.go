// Package worker runs the background jobs: document review, notification
// emails and the purge of deleted documents.
package worker

import (
	"context"
	"fmt"
	"studyshare/internal/categorizer"
	"studyshare/internal/config"
	"studyshare/internal/documents"
	"studyshare/internal/notifications"
	"studyshare/pkg/logger"
	"studyshare/pkg/mailer"
	"studyshare/pkg/objectstore"
	"studyshare/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the job runner.
type Options struct {
	// MaxWorkers is the number of concurrent jobs per queue.
	MaxWorkers       int
	MaxDocumentBytes int64
	DeletedRetention time.Duration
	PurgeInterval    time.Duration
	SiteURL          string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:       cfg.Worker.MaxWorkers,
		MaxDocumentBytes: cfg.Storage.MaxUploadBytes,
		DeletedRetention: cfg.Worker.DeletedRetention,
		PurgeInterval:    cfg.Worker.PurgeInterval,
		SiteURL:          cfg.Email.SiteURL,
	}
}

// Dependencies are the services the workers call.
type Dependencies struct {
	Storage     storage.Storage
	Objects     objectstore.Store
	Categorizer categorizer.Categorizer
	// Sender may be nil, in which case email jobs are not worked.
	Sender mailer.Sender
}

// Workers registers every worker.
func Workers(deps Dependencies, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewReviewDocumentWorker(deps.Storage, deps.Objects, deps.Categorizer, opts.MaxDocumentBytes))
	river.AddWorker(workers, NewPurgeDeletedWorker(deps.Storage, deps.Objects, opts.DeletedRetention))
	if deps.Sender != nil {
		river.AddWorker(workers, NewNotificationEmailWorker(deps.Storage, deps.Sender, opts.SiteURL))
	}

	return workers
}

// Start creates and starts the River client working every queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	deps Dependencies,
	opts Options) (*river.Client[pgx.Tx], error) {
	queues := map[string]river.QueueConfig{
		river.QueueDefault:    {MaxWorkers: opts.MaxWorkers},
		documents.QueueReview: {MaxWorkers: opts.MaxWorkers},
	}
	if deps.Sender != nil {
		queues[notifications.QueueEmail] = river.QueueConfig{MaxWorkers: opts.MaxWorkers}
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues:  queues,
		Workers: Workers(deps, opts),
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.PurgeInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return PurgeJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
