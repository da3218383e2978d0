package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationID uniquely identifies a material request.
type RecommendationID uuid.UUID

// RecommendationStatus is the lifecycle state of a request.
type RecommendationStatus string

const (
	RecommendationOpen      RecommendationStatus = "open"
	RecommendationFulfilled RecommendationStatus = "fulfilled"
	RecommendationClosed    RecommendationStatus = "closed"
)

// Recommendation is a request for study material the community is missing.
// Another student fulfills it by pointing at an approved document.
type Recommendation struct {
	ID          RecommendationID     `json:"id"`
	RequesterID UserID               `json:"requesterId"`
	Subject     Subject              `json:"subject"`
	Medium      Medium               `json:"medium"`
	DocType     DocType              `json:"docType"`
	Description string               `json:"description"`
	Status      RecommendationStatus `json:"status"`
	// DocumentID is set once fulfilled.
	DocumentID  *DocumentID `json:"documentId,omitempty"`
	FulfilledBy UserID      `json:"fulfilledBy,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}
