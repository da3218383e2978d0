package storage

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
)

// NotificationStorage persists in-app notifications.
type NotificationStorage interface {
	// StoreNotification inserts a notification and returns the stored row.
	StoreNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	// NotificationByID returns a notification or nil when not found.
	NotificationByID(ctx context.Context, ID domain.NotificationID) (*domain.Notification, error)
	// UserNotifications returns notifications of a user, newest first. It
	// fetches page.Limit+1 rows.
	UserNotifications(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		page pagination.Page) ([]domain.Notification, error)
	// UnreadCount counts unread notifications of a user.
	UnreadCount(ctx context.Context, userID domain.UserID) (int, error)
	// MarkNotificationsRead marks the given notifications of the user as read,
	// or all of them when IDs is empty. It returns the number of changed rows.
	MarkNotificationsRead(ctx context.Context, userID domain.UserID, IDs []domain.NotificationID) (int64, error)
	// MarkNotificationEmailed stamps emailed_at.
	MarkNotificationEmailed(ctx context.Context, ID domain.NotificationID) error
}
