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
	messagesTable = "thank_you_messages"
)

var messageColumns = []interface{}{ //nolint: gochecknoglobals
	"id", "document_id", "sender_id", "recipient_id", "body", "moderation", "created_at",
}

func (p *PgSQL) StoreMessage(ctx context.Context, msg domain.ThankYouMessage) (*domain.ThankYouMessage, error) {
	moderation := msg.Moderation
	if moderation == "" {
		moderation = domain.VerdictAppropriate
	}

	var row PgMessage
	if _, err := p.Builder.Insert(messagesTable).
		Rows(PgMessage{
			DocumentID:  uuid.UUID(msg.DocumentID),
			SenderID:    string(msg.SenderID),
			RecipientID: string(msg.RecipientID),
			Body:        msg.Body,
			Moderation:  string(moderation),
		}).
		Returning(messageColumns...).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store message into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// UserMessages returns the messages a user received, newest first.
func (p *PgSQL) UserMessages(ctx context.Context,
	recipientID domain.UserID,
	page pagination.Page) ([]domain.ThankYouMessage, error) {
	cols := append([]interface{}{}, messageColumns...)
	cols = append(cols,
		goqu.L("(SELECT name FROM users WHERE users.id = thank_you_messages.sender_id)").As("sender_name"),
		goqu.L("(SELECT title FROM documents WHERE documents.id = thank_you_messages.document_id)").As("document_title"),
	)

	var rows []PgMessage
	if err := p.Builder.From(messagesTable).
		Select(cols...).
		Where(goqu.I("recipient_id").Eq(string(recipientID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(page.Offset).
		Limit(page.Limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user messages from pg: %w", err)
	}

	out := make([]domain.ThankYouMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}
