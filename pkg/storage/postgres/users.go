package postgres

import (
	"context"
	"fmt"
	"studyshare/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// UpsertUser inserts the user or refreshes the profile fields of an existing
// row. The stored role is only overwritten when user.Role is set.
func (p *PgSQL) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	update := goqu.Record{
		"email":      goqu.L("EXCLUDED.email"),
		"name":       goqu.L("EXCLUDED.name"),
		"image_url":  goqu.L("EXCLUDED.image_url"),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if user.Role != "" {
		update["role"] = goqu.L("EXCLUDED.role")
	}

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", update)).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert user into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UserByID returns a user by id or nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(string(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

type pgUserStats struct {
	PendingUploads   int `db:"pending_uploads"`
	ApprovedUploads  int `db:"approved_uploads"`
	RejectedUploads  int `db:"rejected_uploads"`
	Downloads        int `db:"downloads"`
	UpvotesReceived  int `db:"upvotes_received"`
	MessagesReceived int `db:"messages_received"`
}

// UserStats aggregates the uploads of a user and the messages they received.
func (p *PgSQL) UserStats(ctx context.Context, ID domain.UserID) (domain.UserStats, error) {
	var row pgUserStats
	_, err := p.Builder.From(documentsTable).
		Select(
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(domain.DocumentStatusPending)).As("pending_uploads"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(domain.DocumentStatusApproved)).As("approved_uploads"),
			goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(domain.DocumentStatusRejected)).As("rejected_uploads"),
			goqu.COALESCE(goqu.SUM("downloads"), 0).As("downloads"),
			goqu.COALESCE(goqu.SUM("upvotes"), 0).As("upvotes_received"),
			goqu.L("(SELECT COUNT(*) FROM thank_you_messages WHERE recipient_id = ?)", string(ID)).As("messages_received"),
		).
		Where(
			goqu.I("uploader_id").Eq(string(ID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("could not compute user stats: %w", err)
	}

	return domain.UserStats(row), nil
}

type pgContributor struct {
	PgUser
	ApprovedUploads int `db:"approved_uploads"`
	Downloads       int `db:"downloads"`
}

// TopContributors ranks users by approved uploads, then by downloads of those
// uploads. Users without approved uploads are left out.
func (p *PgSQL) TopContributors(ctx context.Context, limit uint) ([]domain.Contributor, error) {
	var rows []pgContributor
	err := p.Builder.From(goqu.T(usersTable).As("u")).
		InnerJoin(goqu.T(documentsTable).As("d"), goqu.On(
			goqu.I("d.uploader_id").Eq(goqu.I("u.id")),
			goqu.I("d.status").Eq(string(domain.DocumentStatusApproved)),
			goqu.I("d.deleted_at").IsNull(),
		)).
		Select(
			"u.id", "u.email", "u.name", "u.image_url", "u.role", "u.created_at", "u.updated_at",
			goqu.COUNT("d.id").As("approved_uploads"),
			goqu.COALESCE(goqu.SUM("d.downloads"), 0).As("downloads"),
		).
		GroupBy("u.id").
		Order(
			goqu.I("approved_uploads").Desc(),
			goqu.I("downloads").Desc(),
			goqu.I("u.id").Asc(),
		).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not fetch top contributors: %w", err)
	}

	out := make([]domain.Contributor, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Contributor{
			User:            *row.ToDomain(),
			ApprovedUploads: row.ApprovedUploads,
			Downloads:       row.Downloads,
		})
	}

	return out, nil
}
