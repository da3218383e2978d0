package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies an uploaded document.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DocumentID uuid.UUID

// DocumentStatus represents the lifecycle state of a document.
type DocumentStatus string

const (
	// DocumentStatusPending indicates the document waits for an admin decision.
	DocumentStatusPending DocumentStatus = "pending"
	// DocumentStatusApproved indicates the document is publicly listed.
	DocumentStatusApproved DocumentStatus = "approved"
	// DocumentStatusRejected indicates an admin refused the document.
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Categorization is the AI suggested metadata of a document.
type Categorization struct {
	Title      string  `json:"title"`
	Subject    Subject `json:"subject"`
	Medium     Medium  `json:"medium"`
	DocType    DocType `json:"docType"`
	Year       int     `json:"year,omitempty"`
	Confidence float64 `json:"confidence"`
	// Fallback is set when the defaults were used because the model call or
	// its reply could not be used.
	Fallback bool   `json:"fallback"`
	Model    string `json:"model,omitempty"`
}

// Verdict is the outcome of an AI content check.
type Verdict string

const (
	VerdictAppropriate   Verdict = "appropriate"
	VerdictInappropriate Verdict = "inappropriate"
	// VerdictUnverified means the check could not run and the content was let through.
	VerdictUnverified Verdict = "unverified"
)

// Review is the automatic screening result attached to a document after upload.
type Review struct {
	Verdict         Verdict   `json:"verdict,omitempty"`
	IsStudyMaterial bool      `json:"isStudyMaterial"`
	Reason          string    `json:"reason,omitempty"`
	ReviewedAt      time.Time `json:"reviewedAt,omitzero"`
}

// Document is a study material uploaded by a user.
type Document struct {
	// ID is the unique identifier of the document.
	ID DocumentID `json:"id"`
	// UploaderID is the user who uploaded the document.
	UploaderID UserID `json:"uploaderId"`
	// UploaderName is filled on reads for display purposes.
	UploaderName string `json:"uploaderName,omitempty"`

	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Subject     Subject `json:"subject"`
	Medium      Medium  `json:"medium"`
	DocType     DocType `json:"docType"`
	// Year is the examination year for papers; zero when unknown.
	Year int `json:"year,omitempty"`

	// FileKey is the object key of the PDF in object storage.
	FileKey     string `json:"-"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`
	PageCount   int    `json:"pageCount"`

	Status    DocumentStatus `json:"status"`
	Upvotes   int            `json:"upvotes"`
	Downvotes int            `json:"downvotes"`
	Downloads int            `json:"downloads"`
	// FlagCount is the number of unresolved reports.
	FlagCount int `json:"flagCount"`

	Category Categorization `json:"category"`
	Review   Review         `json:"review"`

	RejectionReason string    `json:"rejectionReason,omitempty"`
	ReviewedBy      UserID    `json:"reviewedBy,omitempty"`
	ReviewedAt      time.Time `json:"reviewedAt,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	DeletedAt time.Time `json:"-"`

	// MyVote is the viewer's vote (-1, 0 or 1) when known.
	MyVote int `json:"myVote"`
}

// Score is the net vote count.
func (d *Document) Score() int { return d.Upvotes - d.Downvotes }

// VisibleTo reports whether viewer (nil for anonymous) may see d.
// Approved documents are public; others only to their uploader and admins.
func (d *Document) VisibleTo(viewer *User) bool {
	if d.Status == DocumentStatusApproved {
		return true
	}
	if viewer == nil {
		return false
	}

	return viewer.IsAdmin() || viewer.ID == d.UploaderID
}

// DocumentSort orders browse results.
type DocumentSort string

const (
	SortNewest        DocumentSort = "newest"
	SortMostDownloads DocumentSort = "downloads"
	SortTopVoted      DocumentSort = "votes"
)

// DocumentFilter narrows the public document listing. Zero fields are ignored.
type DocumentFilter struct {
	Subject Subject
	Medium  Medium
	DocType DocType
	Year    int
	Query   string
	Sort    DocumentSort
}

// MinYear is the oldest examination year accepted for a document.
const MinYear = 1990

// ValidYear reports whether year is zero (unknown) or between MinYear and
// next year.
func ValidYear(year int, now time.Time) bool {
	return year == 0 || (year >= MinYear && year <= now.Year()+1)
}
