package v1handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"studyshare/internal/documents"
	"studyshare/pkg/domain"
	"studyshare/pkg/serrors"
)

// multipartOverhead is the room left for form fields and part headers on
// top of the file size cap.
const multipartOverhead = 1 << 20

type voteRequest struct {
	Value *int `json:"value" validate:"required,min=-1,max=1"`
}

type flagRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type messageRequest struct {
	Body string `json:"body" validate:"required,max=500"`
}

// Subjects returns the subject catalog together with the media and
// document types.
func (h *Handler) Subjects(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, map[string]any{
		"subjects": domain.Catalog,
		"media":    domain.Media,
		"docTypes": domain.DocTypes,
	})
}

// ListDocuments browses approved documents.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	filter, err := documentFilter(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	docs, next, err := h.deps.Documents.List(r.Context(), GetUserIDFromContext(r.Context()), filter, cursor, limit)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, newPage(docs, next))
}

func documentFilter(r *http.Request) (domain.DocumentFilter, error) {
	q := r.URL.Query()
	var (
		filter domain.DocumentFilter
		fields []serrors.FieldError
	)

	if raw := q.Get("subject"); raw != "" {
		subject, ok := domain.ParseSubject(raw)
		if !ok {
			fields = append(fields, serrors.FieldError{Field: "subject", Error: "unknown subject"})
		}
		filter.Subject = subject
	}
	if raw := q.Get("medium"); raw != "" {
		medium, ok := domain.ParseMedium(raw)
		if !ok {
			fields = append(fields, serrors.FieldError{Field: "medium", Error: "unknown medium"})
		}
		filter.Medium = medium
	}
	if raw := q.Get("type"); raw != "" {
		docType, ok := domain.ParseDocType(raw)
		if !ok {
			fields = append(fields, serrors.FieldError{Field: "type", Error: "unknown document type"})
		}
		filter.DocType = docType
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, serrors.FieldError{Field: "year", Error: "must be a number"})
		}
		filter.Year = year
	}
	if len(fields) > 0 {
		return filter, serrors.Invalid(fields, "invalid filter")
	}

	filter.Query = q.Get("q")
	filter.Sort = domain.DocumentSort(q.Get("sort"))

	return filter, nil
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	doc, err := h.deps.Documents.Get(r.Context(), GetUserFromContext(r.Context()), domain.DocumentID(ID))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, doc)
}

// CategorizeDocument suggests metadata for files before they are uploaded.
func (h *Handler) CategorizeDocument(w http.ResponseWriter, r *http.Request) {
	files, form, err := h.readUpload(w, r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	category, err := h.deps.Documents.Categorize(r.Context(),
		GetUserIDFromContext(r.Context()),
		files,
		form.Get("title"))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, category)
}

// UploadDocument stores files as a pending document.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	files, form, err := h.readUpload(w, r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	meta := documents.Metadata{
		Title:       form.Get("title"),
		Description: form.Get("description"),
		Subject:     domain.Subject(form.Get("subject")),
		Medium:      domain.Medium(form.Get("medium")),
		DocType:     domain.DocType(first(form.Get("docType"), form.Get("type"))),
	}
	if raw := form.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, serrors.Invalid([]serrors.FieldError{{Field: "year", Error: "must be a number"}},
				"invalid metadata"))

			return
		}
		meta.Year = year
	}

	doc, err := h.deps.Documents.Upload(r.Context(), GetUserIDFromContext(r.Context()), files, meta)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.created(w, r, doc)
}

type formValues map[string][]string

func (f formValues) Get(key string) string {
	if v := f[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}

	return ""
}

// readUpload parses a multipart form carrying files under "files" or
// "files[]".
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]documents.File, formValues, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, nil, serrors.With(serrors.ErrBadRequest,
				"upload is larger than %d bytes", h.opts.MaxUploadBytes)
		}

		return nil, nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form")
	}
	defer r.MultipartForm.RemoveAll() //nolint: errcheck

	headers := slices.Concat(r.MultipartForm.File["files"], r.MultipartForm.File["files[]"])
	files := make([]documents.File, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, documents.File{Name: fh.Filename, Data: data})
	}

	return files, formValues(r.MultipartForm.Value), nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer f.Close() //nolint: errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read uploaded file: %w", err)
	}

	return data, nil
}

func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	dl, err := h.deps.Documents.Download(r.Context(), GetUserFromContext(r.Context()), domain.DocumentID(ID))
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, dl)
}

func (h *Handler) VoteDocument(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	var req voteRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}

	tally, err := h.deps.Documents.Vote(r.Context(), GetUserIDFromContext(r.Context()), domain.DocumentID(ID), *req.Value)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, tally)
}

func (h *Handler) FlagDocument(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	var req flagRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}

	flag, err := h.deps.Documents.Flag(r.Context(), GetUserIDFromContext(r.Context()), domain.DocumentID(ID), req.Reason)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.created(w, r, flag)
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
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

	if err := h.deps.Documents.Delete(r.Context(), user, domain.DocumentID(ID)); err != nil {
		h.fail(w, r, err)

		return
	}

	h.ok(w, r, map[string]bool{"deleted": true})
}

// SendMessage thanks the uploader of a document.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)

		return
	}
	var req messageRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)

		return
	}

	msg, err := h.deps.Messages.Send(r.Context(), GetUserIDFromContext(r.Context()), domain.DocumentID(ID), req.Body)
	if err != nil {
		h.fail(w, r, err)

		return
	}

	h.created(w, r, msg)
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
