package storage

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
)

// RecommendationUpdates lists the fields a state change may set.
type RecommendationUpdates struct {
	Status      domain.RecommendationStatus
	DocumentID  *domain.DocumentID
	FulfilledBy *domain.UserID
}

// RecommendationStorage persists requests for missing material.
type RecommendationStorage interface {
	// StoreRecommendation inserts a request and returns the stored row.
	StoreRecommendation(ctx context.Context, rec domain.Recommendation) (*domain.Recommendation, error)
	// RecommendationByID returns the request or nil when not found.
	RecommendationByID(ctx context.Context, ID domain.RecommendationID) (*domain.Recommendation, error)
	// ListRecommendations returns requests with the given status (all when
	// empty), newest first. It fetches page.Limit+1 rows.
	ListRecommendations(ctx context.Context,
		status domain.RecommendationStatus,
		page pagination.Page) ([]domain.Recommendation, error)
	// TransitionRecommendation applies updates only while the request is still
	// in the from state. It returns nil when no row matched.
	TransitionRecommendation(ctx context.Context,
		ID domain.RecommendationID,
		from domain.RecommendationStatus,
		updates RecommendationUpdates) (*domain.Recommendation, error)
}
