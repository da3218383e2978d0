package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageID uniquely identifies a thank-you message.
type MessageID uuid.UUID

// ThankYouMessage is a short note a student leaves for the uploader of a
// document they found useful.
type ThankYouMessage struct {
	ID          MessageID  `json:"id"`
	DocumentID  DocumentID `json:"documentId"`
	SenderID    UserID     `json:"senderId"`
	RecipientID UserID     `json:"recipientId"`
	Body        string     `json:"body"`
	// Moderation records how the AI check treated the body.
	Moderation Verdict   `json:"moderation"`
	CreatedAt  time.Time `json:"createdAt"`

	// SenderName and DocumentTitle are filled on reads.
	SenderName    string `json:"senderName,omitempty"`
	DocumentTitle string `json:"documentTitle,omitempty"`
}
