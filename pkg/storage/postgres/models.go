package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"studyshare/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	ImageURL string `db:"image_url"`
	Role     string `db:"role"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		Role:      domain.Role(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	*p = PgUser{
		ID:       string(user.ID),
		Email:    user.Email,
		Name:     user.Name,
		ImageURL: user.ImageURL,
		Role:     string(role),
	}
}

type PgDocument struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	UploaderID   string    `db:"uploader_id"`
	UploaderName string    `db:"uploader_name" goqu:"skipinsert"`

	Title       string `db:"title"`
	Description string `db:"description"`
	Subject     string `db:"subject"`
	Medium      string `db:"medium"`
	DocType     string `db:"doc_type"`
	Year        int    `db:"year"`

	FileKey     string `db:"file_key"`
	FileName    string `db:"file_name"`
	ContentType string `db:"content_type"`
	FileSize    int64  `db:"file_size"`
	PageCount   int    `db:"page_count"`

	Status    string `db:"status"`
	Upvotes   int    `db:"upvotes"    goqu:"skipinsert"`
	Downvotes int    `db:"downvotes"  goqu:"skipinsert"`
	Downloads int    `db:"downloads"  goqu:"skipinsert"`
	FlagCount int    `db:"flag_count" goqu:"skipinsert"`

	Category json.RawMessage `db:"ai_category"`
	Review   json.RawMessage `db:"ai_review"`

	RejectionReason sql.NullString `db:"rejection_reason" goqu:"skipinsert"`
	ReviewedBy      sql.NullString `db:"reviewed_by"      goqu:"skipinsert"`
	ReviewedAt      sql.NullTime   `db:"reviewed_at"      goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`

	MyVote int `db:"my_vote" goqu:"skipinsert"`
}

func (p *PgDocument) ToDomain() (*domain.Document, error) {
	var category domain.Categorization
	if len(p.Category) > 0 {
		if err := json.Unmarshal(p.Category, &category); err != nil {
			return nil, fmt.Errorf("could not unmarshal document category: %w", err)
		}
	}
	var review domain.Review
	if len(p.Review) > 0 {
		if err := json.Unmarshal(p.Review, &review); err != nil {
			return nil, fmt.Errorf("could not unmarshal document review: %w", err)
		}
	}

	return &domain.Document{
		ID:              domain.DocumentID(p.ID),
		UploaderID:      domain.UserID(p.UploaderID),
		UploaderName:    p.UploaderName,
		Title:           p.Title,
		Description:     p.Description,
		Subject:         domain.Subject(p.Subject),
		Medium:          domain.Medium(p.Medium),
		DocType:         domain.DocType(p.DocType),
		Year:            p.Year,
		FileKey:         p.FileKey,
		FileName:        p.FileName,
		ContentType:     p.ContentType,
		FileSize:        p.FileSize,
		PageCount:       p.PageCount,
		Status:          domain.DocumentStatus(p.Status),
		Upvotes:         p.Upvotes,
		Downvotes:       p.Downvotes,
		Downloads:       p.Downloads,
		FlagCount:       p.FlagCount,
		Category:        category,
		Review:          review,
		RejectionReason: p.RejectionReason.String,
		ReviewedBy:      domain.UserID(p.ReviewedBy.String),
		ReviewedAt:      p.ReviewedAt.Time,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
		DeletedAt:       p.DeletedAt.Time,
		MyVote:          p.MyVote,
	}, nil
}

func (p *PgDocument) FromDomain(doc domain.Document) error {
	category, err := json.Marshal(doc.Category)
	if err != nil {
		return fmt.Errorf("could not marshal document category: %w", err)
	}
	review, err := json.Marshal(doc.Review)
	if err != nil {
		return fmt.Errorf("could not marshal document review: %w", err)
	}
	status := doc.Status
	if status == "" {
		status = domain.DocumentStatusPending
	}

	*p = PgDocument{
		ID:          uuid.UUID(doc.ID),
		UploaderID:  string(doc.UploaderID),
		Title:       doc.Title,
		Description: doc.Description,
		Subject:     string(doc.Subject),
		Medium:      string(doc.Medium),
		DocType:     string(doc.DocType),
		Year:        doc.Year,
		FileKey:     doc.FileKey,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		FileSize:    doc.FileSize,
		PageCount:   doc.PageCount,
		Status:      string(status),
		Category:    category,
		Review:      review,
	}

	return nil
}

func pgDocumentsToDomain(docs []PgDocument) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		d, err := doc.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgFlag struct {
	ID         uuid.UUID    `db:"id"          goqu:"skipinsert"`
	DocumentID uuid.UUID    `db:"document_id"`
	UserID     string       `db:"user_id"`
	Reason     string       `db:"reason"`
	ResolvedAt sql.NullTime `db:"resolved_at" goqu:"skipinsert"`
	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgFlag) ToDomain() *domain.Flag {
	return &domain.Flag{
		ID:         domain.FlagID(p.ID),
		DocumentID: domain.DocumentID(p.DocumentID),
		UserID:     domain.UserID(p.UserID),
		Reason:     p.Reason,
		ResolvedAt: p.ResolvedAt.Time,
		CreatedAt:  p.CreatedAt,
	}
}

type PgMessage struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	DocumentID  uuid.UUID `db:"document_id"`
	SenderID    string    `db:"sender_id"`
	RecipientID string    `db:"recipient_id"`
	Body        string    `db:"body"`
	Moderation  string    `db:"moderation"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`

	SenderName    string `db:"sender_name"    goqu:"skipinsert"`
	DocumentTitle string `db:"document_title" goqu:"skipinsert"`
}

func (p *PgMessage) ToDomain() *domain.ThankYouMessage {
	return &domain.ThankYouMessage{
		ID:            domain.MessageID(p.ID),
		DocumentID:    domain.DocumentID(p.DocumentID),
		SenderID:      domain.UserID(p.SenderID),
		RecipientID:   domain.UserID(p.RecipientID),
		Body:          p.Body,
		Moderation:    domain.Verdict(p.Moderation),
		CreatedAt:     p.CreatedAt,
		SenderName:    p.SenderName,
		DocumentTitle: p.DocumentTitle,
	}
}

type PgRecommendation struct {
	ID          uuid.UUID      `db:"id"           goqu:"skipinsert"`
	RequesterID string         `db:"requester_id"`
	Subject     string         `db:"subject"`
	Medium      string         `db:"medium"`
	DocType     string         `db:"doc_type"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	DocumentID  uuid.NullUUID  `db:"document_id"  goqu:"skipinsert"`
	FulfilledBy sql.NullString `db:"fulfilled_by" goqu:"skipinsert"`
	CreatedAt   time.Time      `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgRecommendation) ToDomain() *domain.Recommendation {
	rec := &domain.Recommendation{
		ID:          domain.RecommendationID(p.ID),
		RequesterID: domain.UserID(p.RequesterID),
		Subject:     domain.Subject(p.Subject),
		Medium:      domain.Medium(p.Medium),
		DocType:     domain.DocType(p.DocType),
		Description: p.Description,
		Status:      domain.RecommendationStatus(p.Status),
		FulfilledBy: domain.UserID(p.FulfilledBy.String),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
	if p.DocumentID.Valid {
		id := domain.DocumentID(p.DocumentID.UUID)
		rec.DocumentID = &id
	}

	return rec
}

type PgNotification struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	UserID     string        `db:"user_id"`
	Kind       string        `db:"kind"`
	Title      string        `db:"title"`
	Body       string        `db:"body"`
	DocumentID uuid.NullUUID `db:"document_id"`
	ReadAt     sql.NullTime  `db:"read_at"     goqu:"skipinsert"`
	EmailedAt  sql.NullTime  `db:"emailed_at"  goqu:"skipinsert"`
	CreatedAt  time.Time     `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	n := &domain.Notification{
		ID:        domain.NotificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Kind:      domain.NotificationKind(p.Kind),
		Title:     p.Title,
		Body:      p.Body,
		ReadAt:    p.ReadAt.Time,
		EmailedAt: p.EmailedAt.Time,
		CreatedAt: p.CreatedAt,
	}
	if p.DocumentID.Valid {
		id := domain.DocumentID(p.DocumentID.UUID)
		n.DocumentID = &id
	}

	return n
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		UserID: string(n.UserID),
		Kind:   string(n.Kind),
		Title:  n.Title,
		Body:   n.Body,
	}
	if n.DocumentID != nil {
		p.DocumentID = uuid.NullUUID{UUID: uuid.UUID(*n.DocumentID), Valid: true}
	}
}

func nullUserID(id domain.UserID) sql.NullString {
	return sql.NullString{String: string(id), Valid: id != ""}
}
