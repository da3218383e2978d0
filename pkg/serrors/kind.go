// Package serrors carries a semantic kind next to an error so the API layer
// can pick a status code and a safe message without knowing which service
// failed.
package serrors

import "net/http"

// Kind is a sentinel naming a category of failure. Kinds are matched with
// errors.Is through *Error.
type Kind interface {
	error
	isKind()
}

type kind struct {
	code    string
	status  int
	message string
}

func (k kind) Error() string { return k.code }
func (k kind) isKind()       {}

// NewKind declares a kind reported with the given HTTP status and default
// client message.
func NewKind(code string, status int, message string) Kind {
	return kind{code: code, status: status, message: message}
}

var (
	ErrNotFound     = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = NewKind("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrBadRequest   = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	// ErrConflict reports a state clash such as a document that is no longer
	// pending.
	ErrConflict = NewKind("CONFLICT", http.StatusConflict, "conflict")
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	// ErrTimeout is used when a deadline passes, including upstream calls.
	ErrTimeout     = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
)

// HTTPStatus returns the status code k is reported with. Kinds declared
// without one map to 500.
func HTTPStatus(k Kind) int {
	if kk, ok := k.(kind); ok && kk.status != 0 {
		return kk.status
	}

	return http.StatusInternalServerError
}

// DefaultMessage is the client message used when an error of kind k carries
// none of its own.
func DefaultMessage(k Kind) string {
	if kk, ok := k.(kind); ok && kk.message != "" {
		return kk.message
	}

	return "internal error"
}
