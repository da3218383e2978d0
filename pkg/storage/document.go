package storage

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"time"
)

// DocumentUpdates describes a set of optional fields that can be applied to an
// existing document. Only non-nil fields will be updated.
type DocumentUpdates struct {
	// Status is the new lifecycle state.
	Status *domain.DocumentStatus
	// Review replaces the automatic screening result.
	Review *domain.Review
	// RejectionReason sets the reason shown to the uploader. An empty string
	// clears it.
	RejectionReason *string
	// ReviewedBy records the moderator and stamps reviewed_at.
	ReviewedBy *domain.UserID
}

// DocumentStorage defines CRUD and query operations on documents. Every read
// ignores soft-deleted rows unless stated otherwise.
type DocumentStorage interface {
	// StoreDocument inserts a document and returns the stored row including
	// generated fields.
	StoreDocument(ctx context.Context, doc domain.Document) (*domain.Document, error)
	// DocumentByID fetches a document with the viewer's vote filled in (viewer
	// may be empty). Returns nil when not found.
	DocumentByID(ctx context.Context, ID domain.DocumentID, viewer domain.UserID) (*domain.Document, error)
	// LockDocumentByID fetches a document with a row lock. It must run inside a
	// transaction. Returns nil when not found.
	LockDocumentByID(ctx context.Context, ID domain.DocumentID) (*domain.Document, error)
	// ListDocuments returns approved documents matching the filter. It fetches
	// page.Limit+1 rows so callers can detect a next page.
	ListDocuments(ctx context.Context,
		filter domain.DocumentFilter,
		viewer domain.UserID,
		page pagination.Page) ([]domain.Document, error)
	// UserDocuments returns the uploads of a user, optionally filtered by
	// status, newest first. It fetches page.Limit+1 rows.
	UserDocuments(ctx context.Context,
		userID domain.UserID,
		status domain.DocumentStatus,
		page pagination.Page) ([]domain.Document, error)
	// SectionDocuments returns the documents of a dashboard section, oldest
	// first, fetching page.Limit+1 rows.
	SectionDocuments(ctx context.Context,
		section domain.Section,
		downvoteThreshold int,
		page pagination.Page) ([]domain.Document, error)
	// SectionCount counts the documents of a dashboard section.
	SectionCount(ctx context.Context, section domain.Section, downvoteThreshold int) (int, error)
	// UpdateDocument applies updates and returns the updated row, or nil when
	// the document does not exist. updated_at is set automatically.
	UpdateDocument(ctx context.Context, ID domain.DocumentID, updates DocumentUpdates) (*domain.Document, error)
	// IncrementDownloads bumps the download counter of a document.
	IncrementDownloads(ctx context.Context, ID domain.DocumentID) error
	// SoftDeleteDocument sets deleted_at and returns the deleted row, or nil
	// when not found.
	SoftDeleteDocument(ctx context.Context, ID domain.DocumentID) (*domain.Document, error)
	// DeletedDocuments returns soft-deleted documents deleted before the given
	// time, oldest first.
	DeletedDocuments(ctx context.Context, before time.Time, limit uint) ([]domain.Document, error)
	// PurgeDocument removes a soft-deleted document row permanently.
	PurgeDocument(ctx context.Context, ID domain.DocumentID) error
}
