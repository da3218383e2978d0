// Package notifications stores in-app notifications and schedules their
// emails.
package notifications

import (
	"context"
	"fmt"
	"studyshare/internal/config"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"

	"github.com/google/uuid"
)

// maxMarkIDs bounds a single mark-read request.
const maxMarkIDs = 100

// Options configure notification delivery.
type Options struct {
	// EmailEnabled makes Notify enqueue an email job.
	EmailEnabled bool
	// MaxAttempts is the number of email delivery attempts.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		EmailEnabled: cfg.Email.ResendAPIKey != "",
		MaxAttempts:  cfg.Worker.MaxAttempts,
	}
}

type notifications struct {
	options Options
	storage storage.Storage
}

// New creates the notification service.
func New(storage storage.Storage, options Options) Notifications {
	return &notifications{options: options, storage: storage}
}

func (n *notifications) Notify(ctx context.Context,
	tx storage.AllStorage,
	notification domain.Notification) (*domain.Notification, error) {
	stored, err := tx.StoreNotification(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("could not store notification: %w", err)
	}

	if n.options.EmailEnabled {
		if _, err := tx.AddJob(ctx, EmailJobArgs{
			NotificationID: uuid.UUID(stored.ID),
			maxAttempts:    n.options.MaxAttempts,
		}, nil); err != nil {
			return nil, fmt.Errorf("could not add email job: %w", err)
		}
	}

	return stored, nil
}

func (n *notifications) List(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	cursor string,
	limit int) ([]domain.Notification, string, error) {
	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	res, err := n.storage.UserNotifications(ctx, userID, unreadOnly, page)
	if err != nil {
		return nil, "", fmt.Errorf("could not get notifications: %w", err)
	}

	return pagination.Trim(page, res), page.Next(len(res)), nil
}

func (n *notifications) UnreadCount(ctx context.Context, userID domain.UserID) (int, error) {
	count, err := n.storage.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not count notifications: %w", err)
	}

	return count, nil
}

func (n *notifications) MarkRead(ctx context.Context, userID domain.UserID, IDs []domain.NotificationID) (int64, error) {
	if len(IDs) > maxMarkIDs {
		return 0, serrors.With(serrors.ErrBadRequest, "at most %d notifications can be marked at once", maxMarkIDs)
	}

	count, err := n.storage.MarkNotificationsRead(ctx, userID, IDs)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	return count, nil
}
