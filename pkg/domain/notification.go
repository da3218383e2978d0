package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// NotificationKind tells clients how to render a notification.
type NotificationKind string

const (
	NotificationDocumentApproved      NotificationKind = "document_approved"
	NotificationDocumentRejected      NotificationKind = "document_rejected"
	NotificationThankYou              NotificationKind = "thank_you"
	NotificationRecommendationFulfill NotificationKind = "recommendation_fulfilled"
)

// Notification is an in-app message for a single user.
type Notification struct {
	ID         NotificationID   `json:"id"`
	UserID     UserID           `json:"userId"`
	Kind       NotificationKind `json:"kind"`
	Title      string           `json:"title"`
	Body       string           `json:"body,omitempty"`
	DocumentID *DocumentID      `json:"documentId,omitempty"`
	ReadAt     time.Time        `json:"readAt,omitzero"`
	EmailedAt  time.Time        `json:"-"`
	CreatedAt  time.Time        `json:"createdAt"`
}
