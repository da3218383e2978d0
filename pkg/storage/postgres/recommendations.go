package postgres

import (
	"context"
	"fmt"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	recommendationsTable = "recommendations"
)

func (p *PgSQL) StoreRecommendation(ctx context.Context, rec domain.Recommendation) (*domain.Recommendation, error) {
	status := rec.Status
	if status == "" {
		status = domain.RecommendationOpen
	}

	var row PgRecommendation
	if _, err := p.Builder.Insert(recommendationsTable).
		Rows(PgRecommendation{
			RequesterID: string(rec.RequesterID),
			Subject:     string(rec.Subject),
			Medium:      string(rec.Medium),
			DocType:     string(rec.DocType),
			Description: rec.Description,
			Status:      string(status),
		}).
		Returning(&PgRecommendation{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store recommendation into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RecommendationByID(ctx context.Context, ID domain.RecommendationID) (*domain.Recommendation, error) {
	var row PgRecommendation
	found, err := p.Builder.From(recommendationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recommendation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListRecommendations(ctx context.Context,
	status domain.RecommendationStatus,
	page pagination.Page) ([]domain.Recommendation, error) {
	ds := p.Builder.From(recommendationsTable)
	if status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(status)))
	}

	var rows []PgRecommendation
	if err := ds.
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list recommendations from pg: %w", err)
	}

	out := make([]domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

// TransitionRecommendation moves a request out of the from state. Rows in
// any other state are left alone and nil is returned.
func (p *PgSQL) TransitionRecommendation(ctx context.Context,
	ID domain.RecommendationID,
	from domain.RecommendationStatus,
	updates storage.RecommendationUpdates) (*domain.Recommendation, error) {
	rec := goqu.Record{
		"status":     string(updates.Status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.DocumentID != nil {
		rec["document_id"] = uuid.UUID(*updates.DocumentID)
	}
	if updates.FulfilledBy != nil {
		rec["fulfilled_by"] = nullUserID(*updates.FulfilledBy)
	}

	var row PgRecommendation
	found, err := p.Builder.Update(recommendationsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(ID)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgRecommendation{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update recommendation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
