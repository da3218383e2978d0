package v1handler

import (
	"net/http"
	"studyshare/internal/recommendations"
	"studyshare/pkg/domain"

	"github.com/google/uuid"
)

type recommendationRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Medium      string `json:"medium" validate:"required"`
	DocType     string `json:"docType" validate:"required"`
	Description string `json:"description" validate:"max=1000"`
}

type fulfillRequest struct {
	DocumentID uuid.UUID `json:"documentId" validate:"required"`
}

func (h *Handler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	recs, next, err := h.deps.Recommendations.List(r.Context(),
		domain.RecommendationStatus(r.URL.Query().Get("status")),
		cursor,
		limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, newPage(recs, next))
}

// CreateRecommendation asks the community for missing material.
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}

	rec, err := h.deps.Recommendations.Create(r.Context(), GetUserIDFromContext(r.Context()), recommendations.Request{
		Subject:     domain.Subject(req.Subject),
		Medium:      domain.Medium(req.Medium),
		DocType:     domain.DocType(req.DocType),
		Description: req.Description,
	})
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.created(w, r, rec)
}

func (h *Handler) FulfillRecommendation(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	var req fulfillRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}

	rec, err := h.deps.Recommendations.Fulfill(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.RecommendationID(ID),
		domain.DocumentID(req.DocumentID))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, rec)
}

func (h *Handler) CloseRecommendation(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	user, err := currentUser(r.Context())
	if err != nil {
		h.fail(w, r, err)

		return
	}

	rec, err := h.deps.Recommendations.Close(r.Context(), user, domain.RecommendationID(ID))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, rec)
}
