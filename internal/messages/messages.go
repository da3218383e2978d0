// Package messages lets students thank uploaders. Notes pass an AI
// moderation check before they are stored.
package messages

import (
	"context"
	"fmt"
	"strings"
	"studyshare/internal/categorizer"
	"studyshare/internal/notifications"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/pagination"
	"studyshare/pkg/ratelimit"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"unicode/utf8"

	"go.uber.org/zap"
)

const maxBodyLen = 500

type messages struct {
	storage       storage.Storage
	categorizer   categorizer.Categorizer
	notifications notifications.Notifications
	limiter       *ratelimit.Keyed
}

// New creates the message service. limiter bounds moderation calls per
// sender.
func New(storage storage.Storage,
	categorizer categorizer.Categorizer,
	notifications notifications.Notifications,
	limiter *ratelimit.Keyed) Messages {
	return &messages{
		storage:       storage,
		categorizer:   categorizer,
		notifications: notifications,
		limiter:       limiter,
	}
}

func (m *messages) Send(ctx context.Context,
	senderID domain.UserID,
	documentID domain.DocumentID,
	body string) (*domain.ThankYouMessage, error) {
	body = strings.TrimSpace(body)
	if n := utf8.RuneCountInString(body); n == 0 || n > maxBodyLen {
		return nil, serrors.Invalid([]serrors.FieldError{{
			Field: "body",
			Error: fmt.Sprintf("must be 1 to %d characters", maxBodyLen),
		}}, "invalid message")
	}

	doc, err := m.storage.DocumentByID(ctx, documentID, "")
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil || doc.Status != domain.DocumentStatusApproved {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}
	if doc.UploaderID == senderID {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot thank yourself")
	}

	if !m.limiter.Allow(string(senderID)) {
		return nil, serrors.With(serrors.ErrRateLimited, "too many messages, try again in a minute")
	}
	verdict := m.categorizer.ModerateMessage(ctx, body)
	if verdict.Verdict == domain.VerdictInappropriate {
		return nil, serrors.With(serrors.ErrBadRequest, "message was not sent: %s", verdict.Reason)
	}
	if verdict.Verdict == domain.VerdictUnverified {
		logger.Info(ctx, "message stored without moderation", zap.String("senderID", string(senderID)))
	}

	var msg *domain.ThankYouMessage
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		msg, err = tx.StoreMessage(ctx, domain.ThankYouMessage{
			DocumentID:  documentID,
			SenderID:    senderID,
			RecipientID: doc.UploaderID,
			Body:        body,
			Moderation:  verdict.Verdict,
		})
		if err != nil {
			return fmt.Errorf("could not store message: %w", err)
		}

		if _, err := m.notifications.Notify(ctx, tx, domain.Notification{
			UserID:     doc.UploaderID,
			Kind:       domain.NotificationThankYou,
			Title:      fmt.Sprintf("Someone thanked you for %q", doc.Title),
			Body:       body,
			DocumentID: &documentID,
		}); err != nil {
			return fmt.Errorf("could not notify uploader: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}

	return msg, nil
}

func (m *messages) Inbox(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit int) ([]domain.ThankYouMessage, string, error) {
	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	res, err := m.storage.UserMessages(ctx, userID, page)
	if err != nil {
		return nil, "", fmt.Errorf("could not get messages: %w", err)
	}

	return pagination.Trim(page, res), page.Next(len(res)), nil
}
