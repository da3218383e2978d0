package postgres

import (
	"context"
	"fmt"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	notificationsTable = "notifications"
)

func (p *PgSQL) StoreNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	var in PgNotification
	in.FromDomain(n)

	var row PgNotification
	if _, err := p.Builder.Insert(notificationsTable).
		Rows(in).
		Returning(&PgNotification{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store notification into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) NotificationByID(ctx context.Context, ID domain.NotificationID) (*domain.Notification, error) {
	var row PgNotification
	found, err := p.Builder.From(notificationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch notification by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserNotifications returns the notifications of a user, newest first.
func (p *PgSQL) UserNotifications(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	page pagination.Page) ([]domain.Notification, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(string(userID)),
	}
	if unreadOnly {
		w = append(w, goqu.I("read_at").IsNull())
	}

	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch notifications from pg: %w", err)
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UnreadCount(ctx context.Context, userID domain.UserID) (int, error) {
	count, err := p.Builder.From(notificationsTable).
		Where(
			goqu.I("user_id").Eq(string(userID)),
			goqu.I("read_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count unread notifications: %w", err)
	}

	return int(count), nil
}

// MarkNotificationsRead marks unread notifications of a user as read. An
// empty IDs marks every unread notification.
func (p *PgSQL) MarkNotificationsRead(ctx context.Context,
	userID domain.UserID,
	IDs []domain.NotificationID) (int64, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(string(userID)),
		goqu.I("read_at").IsNull(),
	}
	if len(IDs) > 0 {
		ids := make([]uuid.UUID, len(IDs))
		for i, id := range IDs {
			ids[i] = uuid.UUID(id)
		}
		w = append(w, goqu.I("id").In(ids))
	}

	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"read_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(w...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count read notifications: %w", err)
	}

	return n, nil
}

func (p *PgSQL) MarkNotificationEmailed(ctx context.Context, ID domain.NotificationID) error {
	_, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"emailed_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark notification emailed: %w", err)
	}

	return nil
}
