// Package v1handler implements the /v1 JSON API on top of the services.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"studyshare/internal/config"
	"studyshare/internal/documents"
	"studyshare/internal/messages"
	"studyshare/internal/moderation"
	"studyshare/internal/notifications"
	"studyshare/internal/recommendations"
	"studyshare/internal/users"
	"studyshare/pkg/logger"
	"studyshare/pkg/serrors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the services behind the API.
type Deps struct {
	Users           users.Users
	Documents       documents.Documents
	Moderation      moderation.Moderation
	Messages        messages.Messages
	Recommendations recommendations.Recommendations
	Notifications   notifications.Notifications
}

// Options configure request limits.
type Options struct {
	// RequestTimeout bounds ordinary requests.
	RequestTimeout time.Duration
	// UploadTimeout bounds upload and categorize requests.
	UploadTimeout time.Duration
	// MaxUploadBytes caps the files of one upload; the multipart body may
	// be slightly larger.
	MaxUploadBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RequestTimeout: cfg.HTTP.RequestTimeout,
		UploadTimeout:  cfg.HTTP.UploadTimeout,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	}
}

type Handler struct {
	deps     Deps
	opts     Options
	validate *validator.Validate
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{
		deps:     deps,
		opts:     opts,
		validate: newValidator(),
	}
}

// ErrorBody is the error part of a failed response envelope.
type ErrorBody struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []serrors.FieldError `json:"fields,omitempty"`
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err onto a status code and a client safe message. Internal
// errors never expose their cause.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		err = serrors.With(serrors.ErrBadRequest, "request body is larger than %d bytes", maxBytesErr.Limit)
	case errors.Is(err, context.DeadlineExceeded):
		err = serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	body := ErrorBody{Code: kind.Error(), Message: serrors.DefaultMessage(kind)}
	var serr *serrors.Error
	if errors.As(err, &serr) && kind != serrors.ErrInternal {
		if msg := serr.Message(); msg != "" {
			body.Message = msg
		}
		body.Fields = serr.Fields()
	}

	return &ErrorStatusCode{StatusCode: status, Response: body}
}

// Register adds every /v1 route to mux. Routes run under sec; public
// browsing routes accept anonymous callers.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	std := func(fn http.HandlerFunc) http.Handler { return h.timeout(fn, h.opts.RequestTimeout) }
	upload := func(fn http.HandlerFunc) http.Handler { return h.timeout(fn, h.opts.UploadTimeout) }

	// catalog and public browsing
	mux.Handle("GET /v1/subjects", std(h.Subjects))
	mux.Handle("GET /v1/documents", sec.Optional(std(h.ListDocuments)))
	mux.Handle("GET /v1/documents/{id}", sec.Optional(std(h.GetDocument)))
	mux.Handle("GET /v1/users/top", std(h.TopContributors))
	mux.Handle("GET /v1/recommendations", sec.Optional(std(h.ListRecommendations)))

	// documents
	mux.Handle("POST /v1/documents/categorize", sec.Require(upload(h.CategorizeDocument)))
	mux.Handle("POST /v1/documents", sec.Require(upload(h.UploadDocument)))
	mux.Handle("GET /v1/documents/{id}/download", sec.Require(std(h.DownloadDocument)))
	mux.Handle("POST /v1/documents/{id}/vote", sec.Require(std(h.VoteDocument)))
	mux.Handle("POST /v1/documents/{id}/flags", sec.Require(std(h.FlagDocument)))
	mux.Handle("DELETE /v1/documents/{id}", sec.Require(std(h.DeleteDocument)))
	mux.Handle("POST /v1/documents/{id}/messages", sec.Require(std(h.SendMessage)))

	// the caller
	mux.Handle("GET /v1/me", sec.Require(std(h.Me)))
	mux.Handle("GET /v1/me/documents", sec.Require(std(h.MyDocuments)))
	mux.Handle("GET /v1/me/messages", sec.Require(std(h.MyMessages)))
	mux.Handle("GET /v1/me/notifications", sec.Require(std(h.MyNotifications)))
	mux.Handle("POST /v1/me/notifications/read", sec.Require(std(h.MarkNotificationsRead)))

	// recommendations
	mux.Handle("POST /v1/recommendations", sec.Require(std(h.CreateRecommendation)))
	mux.Handle("POST /v1/recommendations/{id}/fulfill", sec.Require(std(h.FulfillRecommendation)))
	mux.Handle("POST /v1/recommendations/{id}/close", sec.Require(std(h.CloseRecommendation)))

	// moderation
	mux.Handle("GET /v1/admin/dashboard", sec.Require(std(h.Dashboard)))
	mux.Handle("GET /v1/admin/documents/{id}/flags", sec.Require(std(h.DocumentFlags)))
	mux.Handle("POST /v1/admin/documents/{id}/actions", sec.Require(std(h.ModerateDocument)))
}

// timeout bounds the request context; services give up with
// context.DeadlineExceeded, reported as TIMEOUT.
func (h *Handler) timeout(fn http.HandlerFunc, d time.Duration) http.Handler {
	if d <= 0 {
		return fn
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()

		fn(w, r.WithContext(ctx))
	})
}
