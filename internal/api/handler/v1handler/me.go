package v1handler

import (
	"errors"
	"net/http"
	"studyshare/pkg/domain"

	"github.com/google/uuid"
)

type markReadRequest struct {
	// IDs lists the notifications to mark; empty marks all of them.
	IDs []uuid.UUID `json:"ids" validate:"max=100"`
}

// Me returns the caller's profile, upload stats and unread count.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.deps.Users.Me(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, me)
}

// MyDocuments lists the caller's uploads in every state.
func (h *Handler) MyDocuments(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	docs, next, err := h.deps.Documents.MyUploads(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.DocumentStatus(r.URL.Query().Get("status")),
		cursor,
		limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, newPage(docs, next))
}

func (h *Handler) MyMessages(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	msgs, next, err := h.deps.Messages.Inbox(r.Context(), GetUserIDFromContext(r.Context()), cursor, limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, newPage(msgs, next))
}

func (h *Handler) MyNotifications(w http.ResponseWriter, r *http.Request) {
	unread, err := queryBool(r, "unread")
	if err != nil {
		h.fail(w, r, err)

		return
	}
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	items, next, err := h.deps.Notifications.List(r.Context(), GetUserIDFromContext(r.Context()), unread, cursor, limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, newPage(items, next))
}

// MarkNotificationsRead marks notifications as read and returns how many
// changed. An empty body marks all of them.
func (h *Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := h.decode(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		h.fail(w, r, err)

		return
	}

	IDs := make([]domain.NotificationID, 0, len(req.IDs))
	for _, ID := range req.IDs {
		IDs = append(IDs, domain.NotificationID(ID))
	}

	count, err := h.deps.Notifications.MarkRead(r.Context(), GetUserIDFromContext(r.Context()), IDs)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, map[string]int64{"updated": count})
}

// TopContributors ranks users by approved uploads.
func (h *Handler) TopContributors(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)

		return
	}

	top, err := h.deps.Users.TopContributors(r.Context(), uint(max(limit, 0)))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	if top == nil {
		top = []domain.Contributor{}
	}

	h.ok(w, r, top)
}
