// Package moderation implements the admin dashboard: documents bucketed into
// sections and the actions allowed in each section.
package moderation

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"studyshare/internal/config"
	"studyshare/internal/notifications"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/metrics"
	"studyshare/pkg/pagination"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxReasonLen = 500

// allowedIn lists the sections each action may be taken from.
var allowedIn = map[Action][]domain.Section{ //nolint: gochecknoglobals
	ActionApprove:      {domain.SectionPending},
	ActionReject:       {domain.SectionPending, domain.SectionFlagged, domain.SectionDownvoted},
	ActionDismissFlags: {domain.SectionFlagged},
	ActionResetVotes:   {domain.SectionDownvoted},
	ActionUnpublish:    {domain.SectionApproved, domain.SectionFlagged, domain.SectionDownvoted},
	ActionDelete:       domain.Sections,
}

// ParseAction validates s as an action.
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	_, ok := allowedIn[a]

	return a, ok
}

// Allowed reports whether action may be taken on a document in section.
func Allowed(action Action, section domain.Section) bool {
	return slices.Contains(allowedIn[action], section)
}

// Options configure the dashboard.
type Options struct {
	// DownvoteThreshold is the net downvote count of the downvoted section.
	DownvoteThreshold int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{DownvoteThreshold: cfg.Moderation.DownvoteThreshold}
}

type moderation struct {
	options       Options
	storage       storage.Storage
	notifications notifications.Notifications
	instruments   *metrics.Instruments
}

// New creates the moderation service.
func New(storage storage.Storage,
	notifications notifications.Notifications,
	instruments *metrics.Instruments,
	options Options) Moderation {
	return &moderation{
		options:       options,
		storage:       storage,
		notifications: notifications,
		instruments:   instruments,
	}
}

func requireAdmin(admin *domain.User) error {
	if !admin.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "admin role required")
	}

	return nil
}

func (m *moderation) Dashboard(ctx context.Context,
	admin *domain.User,
	section domain.Section,
	cursor string,
	limit int) (*Dashboard, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if section == "" {
		section = domain.SectionPending
	}
	if _, ok := domain.ParseSection(string(section)); !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown section %q", section)
	}
	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	dashboard := &Dashboard{Section: section, Counts: make(map[domain.Section]int, len(domain.Sections))}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range domain.Sections {
		g.Go(func() error {
			count, err := m.storage.SectionCount(gctx, s, m.options.DownvoteThreshold)
			if err != nil {
				return fmt.Errorf("could not count %s documents: %w", s, err)
			}
			mu.Lock()
			dashboard.Counts[s] = count
			mu.Unlock()

			return nil
		})
	}
	g.Go(func() error {
		items, err := m.storage.SectionDocuments(gctx, section, m.options.DownvoteThreshold, page)
		if err != nil {
			return fmt.Errorf("could not get %s documents: %w", section, err)
		}
		dashboard.Items = pagination.Trim(page, items)
		dashboard.Next = page.Next(len(items))

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (m *moderation) Flags(ctx context.Context, admin *domain.User, documentID domain.DocumentID) ([]domain.Flag, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	flags, err := m.storage.OpenFlags(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("could not get flags: %w", err)
	}

	return flags, nil
}

func (m *moderation) Act(ctx context.Context,
	admin *domain.User,
	documentID domain.DocumentID,
	action Action,
	reason string) (*domain.Document, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if _, ok := ParseAction(string(action)); !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown action %q", action)
	}
	reason = strings.TrimSpace(reason)
	if action == ActionReject && reason == "" {
		return nil, serrors.Invalid([]serrors.FieldError{{Field: "reason", Error: "is required"}},
			"a rejection needs a reason")
	}
	if utf8.RuneCountInString(reason) > maxReasonLen {
		return nil, serrors.Invalid([]serrors.FieldError{{
			Field: "reason", Error: fmt.Sprintf("must be at most %d characters", maxReasonLen),
		}}, "reason too long")
	}

	var doc *domain.Document
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.LockDocumentByID(ctx, documentID)
		if err != nil {
			return fmt.Errorf("could not lock document: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "document not found")
		}

		section, ok := domain.SectionOf(current, m.options.DownvoteThreshold)
		if !ok {
			return serrors.With(serrors.ErrConflict, "document is %s and cannot be moderated", current.Status)
		}
		if !Allowed(action, section) {
			return serrors.With(serrors.ErrConflict, "cannot %s a document in the %s section", action, section)
		}

		doc, err = m.apply(ctx, tx, admin.ID, current, section, action, reason)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not %s document: %w", action, err)
	}

	metrics.Count(ctx, m.instruments.ModerationActions, "action", string(action))
	logger.Info(ctx, "document moderated",
		zap.String("documentID", documentID.String()),
		zap.String("action", string(action)),
		zap.String("adminID", string(admin.ID)))

	return doc, nil
}

// apply runs inside the transaction that locked current.
func (m *moderation) apply(ctx context.Context,
	tx storage.AllStorage,
	adminID domain.UserID,
	current *domain.Document,
	section domain.Section,
	action Action,
	reason string) (*domain.Document, error) {
	ID := current.ID

	switch action {
	case ActionApprove:
		status := domain.DocumentStatusApproved
		empty := ""
		doc, err := tx.UpdateDocument(ctx, ID, storage.DocumentUpdates{
			Status:          &status,
			RejectionReason: &empty,
			ReviewedBy:      &adminID,
		})
		if err != nil {
			return nil, fmt.Errorf("could not approve document: %w", err)
		}
		if err := m.notify(ctx, tx, doc, domain.NotificationDocumentApproved,
			"Your document was approved",
			fmt.Sprintf("%q is now available to everyone.", doc.Title)); err != nil {
			return nil, err
		}

		return doc, nil

	case ActionReject:
		if section == domain.SectionFlagged {
			if _, err := tx.ResolveFlags(ctx, ID); err != nil {
				return nil, fmt.Errorf("could not resolve flags: %w", err)
			}
		}
		status := domain.DocumentStatusRejected
		doc, err := tx.UpdateDocument(ctx, ID, storage.DocumentUpdates{
			Status:          &status,
			RejectionReason: &reason,
			ReviewedBy:      &adminID,
		})
		if err != nil {
			return nil, fmt.Errorf("could not reject document: %w", err)
		}
		if err := m.notify(ctx, tx, doc, domain.NotificationDocumentRejected,
			"Your document was not accepted",
			fmt.Sprintf("%q was rejected: %s", doc.Title, reason)); err != nil {
			return nil, err
		}

		return doc, nil

	case ActionDismissFlags:
		if _, err := tx.ResolveFlags(ctx, ID); err != nil {
			return nil, fmt.Errorf("could not resolve flags: %w", err)
		}

	case ActionResetVotes:
		if err := tx.ResetVotes(ctx, ID); err != nil {
			return nil, fmt.Errorf("could not reset votes: %w", err)
		}

	case ActionUnpublish:
		// open reports would otherwise send the document straight to the
		// flagged section on its next approval
		if _, err := tx.ResolveFlags(ctx, ID); err != nil {
			return nil, fmt.Errorf("could not resolve flags: %w", err)
		}
		status := domain.DocumentStatusPending
		doc, err := tx.UpdateDocument(ctx, ID, storage.DocumentUpdates{Status: &status})
		if err != nil {
			return nil, fmt.Errorf("could not unpublish document: %w", err)
		}

		return doc, nil

	case ActionDelete:
		doc, err := tx.SoftDeleteDocument(ctx, ID)
		if err != nil {
			return nil, fmt.Errorf("could not delete document: %w", err)
		}

		return doc, nil
	}

	doc, err := tx.DocumentByID(ctx, ID, "")
	if err != nil {
		return nil, fmt.Errorf("could not reload document: %w", err)
	}

	return doc, nil
}

func (m *moderation) notify(ctx context.Context,
	tx storage.AllStorage,
	doc *domain.Document,
	kind domain.NotificationKind,
	title, body string) error {
	ID := doc.ID
	if _, err := m.notifications.Notify(ctx, tx, domain.Notification{
		UserID:     doc.UploaderID,
		Kind:       kind,
		Title:      title,
		Body:       body,
		DocumentID: &ID,
	}); err != nil {
		return fmt.Errorf("could not notify uploader: %w", err)
	}

	return nil
}
