package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	documentsTable = "documents"
)

// documentColumns are the physical columns of the documents table. Reads add
// computed columns on top of them.
var documentColumns = []interface{}{ //nolint: gochecknoglobals
	"id", "uploader_id", "title", "description", "subject", "medium", "doc_type", "year",
	"file_key", "file_name", "content_type", "file_size", "page_count",
	"status", "upvotes", "downvotes", "downloads", "flag_count",
	"ai_category", "ai_review", "rejection_reason", "reviewed_by", "reviewed_at",
	"created_at", "updated_at", "deleted_at",
}

// documentSelect returns the read projection for documents, including the
// uploader name and the vote of viewer.
func documentSelect(viewer domain.UserID) []interface{} {
	cols := make([]interface{}, 0, len(documentColumns)+2)
	cols = append(cols, documentColumns...)

	return append(cols,
		goqu.L("(SELECT name FROM users WHERE users.id = documents.uploader_id)").As("uploader_name"),
		goqu.L(
			"COALESCE((SELECT value FROM document_votes WHERE document_votes.document_id = documents.id AND document_votes.user_id = ?), 0)",
			string(viewer),
		).As("my_vote"),
	)
}

func (p *PgSQL) StoreDocument(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	var row PgDocument
	if err := row.FromDomain(doc); err != nil {
		return nil, err
	}

	var result PgDocument
	if _, err := p.Builder.Insert(documentsTable).
		Rows(row).
		Returning(documentColumns...).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store document into pg: %w", err)
	}

	return result.ToDomain()
}

// DocumentByID returns a document by its ID, excluding soft-deleted rows.
func (p *PgSQL) DocumentByID(ctx context.Context, ID domain.DocumentID, viewer domain.UserID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Select(documentSelect(viewer)...).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) LockDocumentByID(ctx context.Context, ID domain.DocumentID) (*domain.Document, error) {
	if _, ok := p.Builder.(*goqu.TxDatabase); !ok {
		return nil, storage.ErrNotInTx
	}

	var row PgDocument
	found, err := p.Builder.From(documentsTable).
		Select(documentColumns...).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("deleted_at").IsNull(),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock document by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ListDocuments returns approved documents matching filter, ordered by
// filter.Sort with created_at and id as tie breakers.
func (p *PgSQL) ListDocuments(ctx context.Context,
	filter domain.DocumentFilter,
	viewer domain.UserID,
	page pagination.Page) ([]domain.Document, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.DocumentStatusApproved)),
		goqu.I("deleted_at").IsNull(),
	}
	if filter.Subject != "" {
		w = append(w, goqu.I("subject").Eq(string(filter.Subject)))
	}
	if filter.Medium != "" {
		w = append(w, goqu.I("medium").Eq(string(filter.Medium)))
	}
	if filter.DocType != "" {
		w = append(w, goqu.I("doc_type").Eq(string(filter.DocType)))
	}
	if filter.Year > 0 {
		w = append(w, goqu.I("year").Eq(filter.Year))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		w = append(w, goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("description").ILike(pattern),
		))
	}

	var order []exp.OrderedExpression
	switch filter.Sort {
	case domain.SortMostDownloads:
		order = append(order, goqu.I("downloads").Desc())
	case domain.SortTopVoted:
		order = append(order, goqu.L("upvotes - downvotes").Desc())
	case domain.SortNewest, "":
	}
	order = append(order, goqu.I("created_at").Desc(), goqu.I("id").Desc())

	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Select(documentSelect(viewer)...).
		Where(w...).
		Order(order...).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list documents from pg: %w", err)
	}

	return pgDocumentsToDomain(rows)
}

// UserDocuments returns the uploads of a user, newest first. An empty status
// returns uploads in every state.
func (p *PgSQL) UserDocuments(ctx context.Context,
	userID domain.UserID,
	status domain.DocumentStatus,
	page pagination.Page) ([]domain.Document, error) {
	w := []goqu.Expression{
		goqu.I("uploader_id").Eq(string(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Select(documentSelect(userID)...).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user documents from pg: %w", err)
	}

	return pgDocumentsToDomain(rows)
}

// sectionCondition mirrors domain.SectionOf as a SQL predicate.
func sectionCondition(section domain.Section, downvoteThreshold int) (exp.Expression, error) {
	approved := goqu.I("status").Eq(string(domain.DocumentStatusApproved))
	notDeleted := goqu.I("deleted_at").IsNull()
	netDown := goqu.L("downvotes - upvotes")

	switch section {
	case domain.SectionPending:
		return goqu.And(notDeleted, goqu.I("status").Eq(string(domain.DocumentStatusPending))), nil
	case domain.SectionFlagged:
		return goqu.And(notDeleted, approved, goqu.I("flag_count").Gt(0)), nil
	case domain.SectionDownvoted:
		if downvoteThreshold <= 0 {
			return goqu.L("FALSE"), nil
		}

		return goqu.And(notDeleted, approved, goqu.I("flag_count").Eq(0), netDown.Gte(downvoteThreshold)), nil
	case domain.SectionApproved:
		if downvoteThreshold <= 0 {
			return goqu.And(notDeleted, approved, goqu.I("flag_count").Eq(0)), nil
		}

		return goqu.And(notDeleted, approved, goqu.I("flag_count").Eq(0), netDown.Lt(downvoteThreshold)), nil
	default:
		return nil, fmt.Errorf("unknown section %q", section)
	}
}

// SectionDocuments lists a dashboard section. The pending queue is served
// oldest first, other sections most flagged or most downvoted first.
func (p *PgSQL) SectionDocuments(ctx context.Context,
	section domain.Section,
	downvoteThreshold int,
	page pagination.Page) ([]domain.Document, error) {
	cond, err := sectionCondition(section, downvoteThreshold)
	if err != nil {
		return nil, err
	}

	var order []exp.OrderedExpression
	switch section {
	case domain.SectionPending:
		order = append(order, goqu.I("created_at").Asc())
	case domain.SectionFlagged:
		order = append(order, goqu.I("flag_count").Desc(), goqu.I("created_at").Desc())
	case domain.SectionDownvoted:
		order = append(order, goqu.L("downvotes - upvotes").Desc(), goqu.I("created_at").Desc())
	case domain.SectionApproved:
		order = append(order, goqu.I("created_at").Desc())
	}
	order = append(order, goqu.I("id").Asc())

	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Select(documentSelect("")...).
		Where(cond).
		Order(order...).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s documents from pg: %w", section, err)
	}

	return pgDocumentsToDomain(rows)
}

func (p *PgSQL) SectionCount(ctx context.Context, section domain.Section, downvoteThreshold int) (int, error) {
	cond, err := sectionCondition(section, downvoteThreshold)
	if err != nil {
		return 0, err
	}

	count, err := p.Builder.From(documentsTable).Where(cond).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count %s documents: %w", section, err)
	}

	return int(count), nil
}

// UpdateDocument updates the given fields of a document and returns the
// updated row, or nil when the document does not exist.
func (p *PgSQL) UpdateDocument(ctx context.Context,
	ID domain.DocumentID,
	updates storage.DocumentUpdates) (*domain.Document, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Review != nil {
		b, err := json.Marshal(updates.Review)
		if err != nil {
			return nil, fmt.Errorf("could not marshal review: %w", err)
		}

		rec["ai_review"] = b
	}
	if updates.RejectionReason != nil {
		if *updates.RejectionReason == "" {
			// set to NULL when empty string provided
			rec["rejection_reason"] = goqu.L("NULL")
		} else {
			rec["rejection_reason"] = *updates.RejectionReason
		}
	}
	if updates.ReviewedBy != nil {
		rec["reviewed_by"] = nullUserID(*updates.ReviewedBy)
		rec["reviewed_at"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(documentColumns...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) IncrementDownloads(ctx context.Context, ID domain.DocumentID) error {
	_, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{"downloads": goqu.L("downloads + 1")}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not increment downloads: %w", err)
	}

	return nil
}

// SoftDeleteDocument performs a soft delete by setting deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) SoftDeleteDocument(ctx context.Context, ID domain.DocumentID) (*domain.Document, error) {
	var row PgDocument
	found, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(ID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(documentColumns...).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete document in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeletedDocuments(ctx context.Context, before time.Time, limit uint) ([]domain.Document, error) {
	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Select(documentColumns...).
		Where(
			goqu.I("deleted_at").IsNotNull(),
			goqu.I("deleted_at").Lt(before),
		).
		Order(goqu.I("deleted_at").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch deleted documents: %w", err)
	}

	return pgDocumentsToDomain(rows)
}

// PurgeDocument removes a soft-deleted document. Votes, flags and messages
// go with it through ON DELETE CASCADE.
func (p *PgSQL) PurgeDocument(ctx context.Context, ID domain.DocumentID) error {
	_, err := p.Builder.Delete(documentsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("deleted_at").IsNotNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not purge document: %w", err)
	}

	return nil
}

// escapeLike escapes the LIKE wildcards of a user supplied search term.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
