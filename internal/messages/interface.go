package messages

import (
	"context"
	"studyshare/pkg/domain"
)

//go:generate mockgen -package mockmessages -source=interface.go -destination=mock/mockmessages.go *
type Messages interface {
	// Send leaves a thank-you note for the uploader of an approved document.
	Send(ctx context.Context,
		senderID domain.UserID,
		documentID domain.DocumentID,
		body string) (*domain.ThankYouMessage, error)
	Inbox(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit int) ([]domain.ThankYouMessage, string, error)
}
