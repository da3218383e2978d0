package v1handler

import (
	"net/http"
	"studyshare/internal/moderation"
	"studyshare/pkg/domain"
	"studyshare/pkg/serrors"
)

type moderateRequest struct {
	Action string `json:"action" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
}

// Dashboard returns one section of the moderation dashboard with the counts
// of every section.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin, err := currentUser(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	dashboard, err := h.deps.Moderation.Dashboard(r.Context(),
		admin,
		domain.Section(r.URL.Query().Get("section")),
		cursor,
		limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	if dashboard.Items == nil {
		dashboard.Items = []domain.Document{}
	}

	h.ok(w, r, dashboard)
}

func (h *Handler) DocumentFlags(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	admin, err := currentUser(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	flags, err := h.deps.Moderation.Flags(r.Context(), admin, domain.DocumentID(ID))
	if err != nil {
		h.fail(w, r, err)

		return
	}
	if flags == nil {
		flags = []domain.Flag{}
	}

	h.ok(w, r, flags)
}

// ModerateDocument applies an admin action to a document.
func (h *Handler) ModerateDocument(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	admin, err := currentUser(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}
	var req moderateRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}
	action, ok := moderation.ParseAction(req.Action)
	if !ok {
		h.fail(w, r, serrors.Invalid([]serrors.FieldError{{Field: "action", Error: "unknown action"}},
			"invalid request"))

		return
	}

	doc, err := h.deps.Moderation.Act(r.Context(), admin, domain.DocumentID(ID), action, req.Reason)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, doc)
}
