package documents

import (
	"context"
	"studyshare/pkg/domain"
	"time"
)

// Metadata is what the uploader confirms about a document.
type Metadata struct {
	Title       string
	Description string
	Subject     domain.Subject
	Medium      domain.Medium
	DocType     domain.DocType
	// Year is optional; zero when unknown.
	Year int
}

// Download is a time-limited link to a document file.
type Download struct {
	URL       string    `json:"url"`
	FileName  string    `json:"fileName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

//go:generate mockgen -package mockdocuments -source=interface.go -destination=mock/mockdocuments.go *
type Documents interface {
	// Categorize stages files and asks the model for metadata suggestions.
	// AI failures yield the fallback categorization.
	Categorize(ctx context.Context, userID domain.UserID, files []File, hint string) (*domain.Categorization, error)
	// Upload stores files as a pending document and schedules its review.
	Upload(ctx context.Context, userID domain.UserID, files []File, meta Metadata) (*domain.Document, error)
	List(ctx context.Context,
		viewer domain.UserID,
		filter domain.DocumentFilter,
		cursor string,
		limit int) ([]domain.Document, string, error)
	Get(ctx context.Context, viewer *domain.User, ID domain.DocumentID) (*domain.Document, error)
	Download(ctx context.Context, viewer *domain.User, ID domain.DocumentID) (*Download, error)
	// Vote sets the caller's vote to value (-1, 0 or 1).
	Vote(ctx context.Context, userID domain.UserID, ID domain.DocumentID, value int) (*domain.VoteTally, error)
	Flag(ctx context.Context, userID domain.UserID, ID domain.DocumentID, reason string) (*domain.Flag, error)
	// Delete soft deletes a document of the caller, or any document for admins.
	Delete(ctx context.Context, viewer *domain.User, ID domain.DocumentID) error
	MyUploads(ctx context.Context,
		userID domain.UserID,
		status domain.DocumentStatus,
		cursor string,
		limit int) ([]domain.Document, string, error)
}
