package storage

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
)

// MessageStorage persists thank-you messages.
type MessageStorage interface {
	// StoreMessage inserts a message and returns the stored row.
	StoreMessage(ctx context.Context, msg domain.ThankYouMessage) (*domain.ThankYouMessage, error)
	// UserMessages returns messages received by a user, newest first, with
	// sender name and document title filled. It fetches page.Limit+1 rows.
	UserMessages(ctx context.Context, recipientID domain.UserID, page pagination.Page) ([]domain.ThankYouMessage, error)
}
