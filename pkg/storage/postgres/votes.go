package postgres

import (
	"context"
	"fmt"
	"studyshare/pkg/domain"
	"studyshare/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	votesTable = "document_votes"
	flagsTable = "document_flags"
)

type pgTally struct {
	Upvotes   int `db:"upvotes"`
	Downvotes int `db:"downvotes"`
}

// SetVote stores or removes the vote of a user and recounts the document
// counters from document_votes.
func (p *PgSQL) SetVote(ctx context.Context,
	documentID domain.DocumentID,
	userID domain.UserID,
	value int) (domain.VoteTally, error) {
	if _, ok := p.Builder.(*goqu.TxDatabase); !ok {
		return domain.VoteTally{}, storage.ErrNotInTx
	}

	if value == domain.VoteNone {
		if _, err := p.Builder.Delete(votesTable).
			Where(
				goqu.I("document_id").Eq(uuid.UUID(documentID)),
				goqu.I("user_id").Eq(string(userID)),
			).
			Executor().ExecContext(ctx); err != nil {
			return domain.VoteTally{}, fmt.Errorf("could not remove vote: %w", err)
		}
	} else {
		if _, err := p.Builder.Insert(votesTable).
			Rows(goqu.Record{
				"document_id": uuid.UUID(documentID),
				"user_id":     string(userID),
				"value":       value,
			}).
			OnConflict(goqu.DoUpdate("document_id, user_id", goqu.Record{
				"value":      goqu.L("EXCLUDED.value"),
				"created_at": goqu.L("CURRENT_TIMESTAMP"),
			})).
			Executor().ExecContext(ctx); err != nil {
			return domain.VoteTally{}, fmt.Errorf("could not store vote: %w", err)
		}
	}

	tally, err := p.recountVotes(ctx, documentID)
	if err != nil {
		return domain.VoteTally{}, err
	}

	return domain.VoteTally{
		Upvotes:   tally.Upvotes,
		Downvotes: tally.Downvotes,
		MyVote:    value,
	}, nil
}

func (p *PgSQL) recountVotes(ctx context.Context, documentID domain.DocumentID) (pgTally, error) {
	var tally pgTally
	_, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"upvotes": goqu.L(
				"(SELECT COUNT(*) FROM document_votes WHERE document_id = documents.id AND value = 1)"),
			"downvotes": goqu.L(
				"(SELECT COUNT(*) FROM document_votes WHERE document_id = documents.id AND value = -1)"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(documentID))).
		Returning("upvotes", "downvotes").
		Executor().ScanStructContext(ctx, &tally)
	if err != nil {
		return pgTally{}, fmt.Errorf("could not recount votes: %w", err)
	}

	return tally, nil
}

func (p *PgSQL) ResetVotes(ctx context.Context, documentID domain.DocumentID) error {
	if _, err := p.Builder.Delete(votesTable).
		Where(goqu.I("document_id").Eq(uuid.UUID(documentID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete votes: %w", err)
	}

	if _, err := p.recountVotes(ctx, documentID); err != nil {
		return err
	}

	return nil
}

// StoreFlag files a report unless the user already has an open one on the
// document, then recounts open reports.
func (p *PgSQL) StoreFlag(ctx context.Context, flag domain.Flag) (*domain.Flag, bool, error) {
	var row PgFlag
	created, err := p.Builder.Insert(flagsTable).
		Rows(PgFlag{
			DocumentID: uuid.UUID(flag.DocumentID),
			UserID:     string(flag.UserID),
			Reason:     flag.Reason,
		}).
		OnConflict(goqu.DoNothing()).
		Returning(&PgFlag{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, false, fmt.Errorf("could not store flag into pg: %w", err)
	}
	if !created {
		return nil, false, nil
	}

	if err := p.recountFlags(ctx, flag.DocumentID); err != nil {
		return nil, false, err
	}

	return row.ToDomain(), true, nil
}

func (p *PgSQL) recountFlags(ctx context.Context, documentID domain.DocumentID) error {
	_, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"flag_count": goqu.L(
				"(SELECT COUNT(*) FROM document_flags WHERE document_id = documents.id AND resolved_at IS NULL)"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(documentID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not recount flags: %w", err)
	}

	return nil
}

func (p *PgSQL) OpenFlags(ctx context.Context, documentID domain.DocumentID) ([]domain.Flag, error) {
	var rows []PgFlag
	if err := p.Builder.From(flagsTable).
		Where(
			goqu.I("document_id").Eq(uuid.UUID(documentID)),
			goqu.I("resolved_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch open flags: %w", err)
	}

	out := make([]domain.Flag, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ResolveFlags(ctx context.Context, documentID domain.DocumentID) (int64, error) {
	res, err := p.Builder.Update(flagsTable).
		Set(goqu.Record{"resolved_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("document_id").Eq(uuid.UUID(documentID)),
			goqu.I("resolved_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not resolve flags: %w", err)
	}
	resolved, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count resolved flags: %w", err)
	}

	if err := p.recountFlags(ctx, documentID); err != nil {
		return 0, err
	}

	return resolved, nil
}
