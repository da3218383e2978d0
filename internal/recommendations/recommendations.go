// Package recommendations tracks requests for study material that nobody
// uploaded yet.
package recommendations

import (
	"context"
	"fmt"
	"strings"
	"studyshare/internal/notifications"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"unicode/utf8"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 1000
)

type recommendations struct {
	storage       storage.Storage
	notifications notifications.Notifications
}

// New creates the recommendation service.
func New(storage storage.Storage, notifications notifications.Notifications) Recommendations {
	return &recommendations{storage: storage, notifications: notifications}
}

func (req *Request) validate() error {
	var fields []serrors.FieldError

	req.Description = strings.TrimSpace(req.Description)
	if n := utf8.RuneCountInString(req.Description); n < minDescriptionLen || n > maxDescriptionLen {
		fields = append(fields, serrors.FieldError{
			Field: "description",
			Error: fmt.Sprintf("must be %d to %d characters", minDescriptionLen, maxDescriptionLen),
		})
	}
	if s, ok := domain.ParseSubject(string(req.Subject)); ok {
		req.Subject = s
	} else {
		fields = append(fields, serrors.FieldError{Field: "subject", Error: "unknown subject"})
	}
	if m, ok := domain.ParseMedium(string(req.Medium)); ok {
		req.Medium = m
	} else {
		fields = append(fields, serrors.FieldError{Field: "medium", Error: "unknown medium"})
	}
	if t, ok := domain.ParseDocType(string(req.DocType)); ok {
		req.DocType = t
	} else {
		fields = append(fields, serrors.FieldError{Field: "docType", Error: "unknown document type"})
	}

	if len(fields) > 0 {
		return serrors.Invalid(fields, "invalid recommendation")
	}

	return nil
}

func (r *recommendations) Create(ctx context.Context,
	userID domain.UserID,
	req Request) (*domain.Recommendation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	rec, err := r.storage.StoreRecommendation(ctx, domain.Recommendation{
		RequesterID: userID,
		Subject:     req.Subject,
		Medium:      req.Medium,
		DocType:     req.DocType,
		Description: req.Description,
		Status:      domain.RecommendationOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store recommendation: %w", err)
	}

	return rec, nil
}

func (r *recommendations) List(ctx context.Context,
	status domain.RecommendationStatus,
	cursor string,
	limit int) ([]domain.Recommendation, string, error) {
	switch status {
	case "":
		status = domain.RecommendationOpen
	case domain.RecommendationOpen, domain.RecommendationFulfilled, domain.RecommendationClosed:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	res, err := r.storage.ListRecommendations(ctx, status, page)
	if err != nil {
		return nil, "", fmt.Errorf("could not list recommendations: %w", err)
	}

	return pagination.Trim(page, res), page.Next(len(res)), nil
}

func (r *recommendations) Fulfill(ctx context.Context,
	userID domain.UserID,
	ID domain.RecommendationID,
	documentID domain.DocumentID) (*domain.Recommendation, error) {
	var rec *domain.Recommendation
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		doc, err := tx.DocumentByID(ctx, documentID, "")
		if err != nil {
			return fmt.Errorf("could not get document: %w", err)
		}
		if doc == nil || doc.Status != domain.DocumentStatusApproved {
			return serrors.With(serrors.ErrBadRequest, "only approved documents can fulfill a request")
		}

		rec, err = tx.TransitionRecommendation(ctx, ID, domain.RecommendationOpen, storage.RecommendationUpdates{
			Status:      domain.RecommendationFulfilled,
			DocumentID:  &documentID,
			FulfilledBy: &userID,
		})
		if err != nil {
			return fmt.Errorf("could not fulfill recommendation: %w", err)
		}
		if rec == nil {
			return r.missingOrClosed(ctx, tx, ID)
		}

		if rec.RequesterID != userID {
			if _, err := r.notifications.Notify(ctx, tx, domain.Notification{
				UserID:     rec.RequesterID,
				Kind:       domain.NotificationRecommendationFulfill,
				Title:      "Your request was fulfilled",
				Body:       fmt.Sprintf("Someone shared %q for your request.", doc.Title),
				DocumentID: &documentID,
			}); err != nil {
				return fmt.Errorf("could not notify requester: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not fulfill recommendation: %w", err)
	}

	return rec, nil
}

func (r *recommendations) Close(ctx context.Context,
	user *domain.User,
	ID domain.RecommendationID) (*domain.Recommendation, error) {
	var rec *domain.Recommendation
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.RecommendationByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not get recommendation: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "recommendation not found")
		}
		if current.RequesterID != user.ID && !user.IsAdmin() {
			return serrors.With(serrors.ErrForbidden, "only the requester can close this request")
		}

		rec, err = tx.TransitionRecommendation(ctx, ID, domain.RecommendationOpen, storage.RecommendationUpdates{
			Status: domain.RecommendationClosed,
		})
		if err != nil {
			return fmt.Errorf("could not close recommendation: %w", err)
		}
		if rec == nil {
			return serrors.With(serrors.ErrConflict, "request is already %s", current.Status)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not close recommendation: %w", err)
	}

	return rec, nil
}

// missingOrClosed explains why a transition matched no row.
func (r *recommendations) missingOrClosed(ctx context.Context, tx storage.AllStorage, ID domain.RecommendationID) error {
	current, err := tx.RecommendationByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get recommendation: %w", err)
	}
	if current == nil {
		return serrors.With(serrors.ErrNotFound, "recommendation not found")
	}

	return serrors.With(serrors.ErrConflict, "request is already %s", current.Status)
}
