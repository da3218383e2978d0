package v1handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"studyshare/pkg/logger"
	"studyshare/pkg/serrors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// errEmptyBody is the cause of the error decode returns for a missing body.
var errEmptyBody = errors.New("empty body")

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// Page is a page of a cursor paginated list.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func newPage[T any](items []T, next string) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, NextCursor: next}
}

// writeJSON encodes v before writing the status so that an encoding
// failure can still be reported as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))

		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(envelope{Error: &ErrorBody{
			Code:    serrors.ErrInternal.Error(),
			Message: serrors.DefaultMessage(serrors.ErrInternal),
		}})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Debug(r.Context(), "could not write response", zap.Error(err))
	}
}

func (h *Handler) ok(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: data})
}

func (h *Handler) created(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusCreated, envelope{Success: true, Data: data})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	if res.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="studyshare"`)
	}
	writeJSON(w, r, res.StatusCode, envelope{Error: &res.Response})
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return err
		case errors.Is(err, io.EOF):
			return serrors.Wrap(serrors.ErrBadRequest, errEmptyBody, "request body is empty")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
		}
	}

	return h.check(dst)
}

func (h *Handler) check(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	fields := make([]serrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, serrors.FieldError{Field: fe.Field(), Error: fieldMessage(fe)})
	}

	return serrors.Invalid(fields, "invalid request")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		switch fe.Kind() { //nolint: exhaustive
		case reflect.String:
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must not have more than %s items", fe.Param())
		default:
			return "must not exceed " + fe.Param()
		}
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	ID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid id %q", r.PathValue("id"))
	}

	return ID, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Invalid([]serrors.FieldError{{Field: name, Error: "must be a number"}},
			"invalid %s", name)
	}

	return v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.Invalid([]serrors.FieldError{{Field: name, Error: "must be true or false"}},
			"invalid %s", name)
	}

	return v, nil
}

// pageParams returns the cursor and limit query parameters.
func pageParams(r *http.Request) (string, int, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return "", 0, err
	}

	return r.URL.Query().Get("cursor"), limit, nil
}
