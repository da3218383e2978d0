package notifications

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/storage"
)

//go:generate mockgen -package mocknotifications -source=interface.go -destination=mock/mocknotifications.go *
type Notifications interface {
	// Notify stores n using tx and, when email is enabled, enqueues an email
	// job in the same transaction.
	Notify(ctx context.Context, tx storage.AllStorage, n domain.Notification) (*domain.Notification, error)
	List(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		cursor string,
		limit int) ([]domain.Notification, string, error)
	UnreadCount(ctx context.Context, userID domain.UserID) (int, error)
	// MarkRead marks the given notifications as read, all of them when IDs
	// is empty.
	MarkRead(ctx context.Context, userID domain.UserID, IDs []domain.NotificationID) (int64, error)
}
