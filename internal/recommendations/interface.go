package recommendations

import (
	"context"
	"studyshare/pkg/domain"
)

// Request describes the material a student is missing.
type Request struct {
	Subject     domain.Subject
	Medium      domain.Medium
	DocType     domain.DocType
	Description string
}

//go:generate mockgen -package mockrecommendations -source=interface.go -destination=mock/mockrecommendations.go *
type Recommendations interface {
	Create(ctx context.Context, userID domain.UserID, req Request) (*domain.Recommendation, error)
	// List returns requests with status, open ones when status is empty.
	List(ctx context.Context,
		status domain.RecommendationStatus,
		cursor string,
		limit int) ([]domain.Recommendation, string, error)
	// Fulfill points an open request at an approved document.
	Fulfill(ctx context.Context,
		userID domain.UserID,
		ID domain.RecommendationID,
		documentID domain.DocumentID) (*domain.Recommendation, error)
	// Close withdraws an open request. Only the requester or an admin may close it.
	Close(ctx context.Context, user *domain.User, ID domain.RecommendationID) (*domain.Recommendation, error)
}
