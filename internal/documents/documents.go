// Package documents implements the upload pipeline and everything students
// do with published documents: browsing, downloading, voting and flagging.
package documents

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"studyshare/internal/categorizer"
	"studyshare/internal/config"
	"studyshare/pkg/convert"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/metrics"
	"studyshare/pkg/objectstore"
	"studyshare/pkg/pagination"
	"studyshare/pkg/ratelimit"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	minTitleLen       = 3
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	minFlagReasonLen  = 5
	maxFlagReasonLen  = 500

	keyPrefix = "documents/"
)

// Options configure the document service.
type Options struct {
	// MaxUploadBytes caps the total size of one submission.
	MaxUploadBytes int64
	// PresignTTL is the lifetime of download links.
	PresignTTL time.Duration
	// MaxAttempts bounds the retries of the review job.
	MaxAttempts int
	// Fonts typeset DOCX text outside Windows-1252.
	Fonts []convert.Font
	// MaxDocxTextBytes caps the inflated text of a DOCX upload.
	MaxDocxTextBytes int64
}

func (o Options) stage() StageOptions {
	return StageOptions{
		MaxBytes: o.MaxUploadBytes,
		Docx:     convert.DocxOptions{Fonts: o.Fonts, MaxTextBytes: o.MaxDocxTextBytes},
	}
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		PresignTTL:     cfg.Storage.PresignTTL,
		MaxAttempts:    cfg.Worker.MaxAttempts,

		MaxDocxTextBytes: cfg.Conversion.MaxDocxTextBytes,
	}
}

// LoadFonts reads the configured DOCX fonts. Unset paths are skipped.
func LoadFonts(cfg *config.Config) ([]convert.Font, error) {
	paths := []struct {
		family string
		path   string
		script *unicode.RangeTable
	}{
		{family: "sinhala", path: cfg.Conversion.SinhalaFont, script: unicode.Sinhala},
		{family: "tamil", path: cfg.Conversion.TamilFont, script: unicode.Tamil},
	}

	var fonts []convert.Font
	for _, p := range paths {
		if p.path == "" {
			continue
		}
		f, err := convert.LoadFont(p.family, p.path, p.script)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}

	return fonts, nil
}

type documents struct {
	options     Options
	storage     storage.Storage
	objects     objectstore.Store
	categorizer categorizer.Categorizer
	limiter     *ratelimit.Keyed
	instruments *metrics.Instruments
	tracer      trace.Tracer
	now         func() time.Time
}

// New creates the document service. limiter bounds Categorize calls per user.
func New(storage storage.Storage,
	objects objectstore.Store,
	categorizer categorizer.Categorizer,
	limiter *ratelimit.Keyed,
	instruments *metrics.Instruments,
	options Options) Documents {
	return &documents{
		options:     options,
		storage:     storage,
		objects:     objects,
		categorizer: categorizer,
		limiter:     limiter,
		instruments: instruments,
		tracer:      otel.Tracer("studyshare/documents"),
		now:         time.Now,
	}
}

// Validate checks and normalizes the metadata in place.
func (m *Metadata) Validate(now time.Time) error {
	var fields []serrors.FieldError

	m.Title = strings.TrimSpace(m.Title)
	m.Description = strings.TrimSpace(m.Description)
	if n := utf8.RuneCountInString(m.Title); n < minTitleLen || n > maxTitleLen {
		fields = append(fields, serrors.FieldError{
			Field: "title",
			Error: fmt.Sprintf("must be %d to %d characters", minTitleLen, maxTitleLen),
		})
	}
	if utf8.RuneCountInString(m.Description) > maxDescriptionLen {
		fields = append(fields, serrors.FieldError{
			Field: "description",
			Error: fmt.Sprintf("must be at most %d characters", maxDescriptionLen),
		})
	}
	if s, ok := domain.ParseSubject(string(m.Subject)); ok {
		m.Subject = s
	} else {
		fields = append(fields, serrors.FieldError{Field: "subject", Error: "unknown subject"})
	}
	if md, ok := domain.ParseMedium(string(m.Medium)); ok {
		m.Medium = md
	} else {
		fields = append(fields, serrors.FieldError{Field: "medium", Error: "unknown medium"})
	}
	if t, ok := domain.ParseDocType(string(m.DocType)); ok {
		m.DocType = t
	} else {
		fields = append(fields, serrors.FieldError{Field: "docType", Error: "unknown document type"})
	}
	if !domain.ValidYear(m.Year, now) {
		fields = append(fields, serrors.FieldError{
			Field: "year",
			Error: fmt.Sprintf("must be between %d and %d", domain.MinYear, now.Year()+1),
		})
	}

	if len(fields) > 0 {
		return serrors.Invalid(fields, "invalid document metadata")
	}

	return nil
}

func (d *documents) Categorize(ctx context.Context,
	userID domain.UserID,
	files []File,
	hint string) (*domain.Categorization, error) {
	ctx, span := d.tracer.Start(ctx, "documents.Categorize")
	defer span.End()

	if !d.limiter.Allow(string(userID)) {
		return nil, serrors.With(serrors.ErrRateLimited, "too many categorization requests, try again in a minute")
	}

	staged, err := Stage(files, d.options.stage())
	if err != nil {
		return nil, err
	}

	res := d.categorizer.Categorize(ctx, categorizer.Input{
		FileName: files[0].Name,
		PDF:      staged.PDF,
		Hint:     hint,
	})

	return &res, nil
}

func (d *documents) Upload(ctx context.Context,
	userID domain.UserID,
	files []File,
	meta Metadata) (*domain.Document, error) {
	ctx, span := d.tracer.Start(ctx, "documents.Upload")
	defer span.End()

	if err := meta.Validate(d.now()); err != nil {
		return nil, err
	}

	staged, err := Stage(files, d.options.stage())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("source", staged.SourceKind),
		attribute.Int("pages", staged.Pages),
		attribute.Int("bytes", len(staged.PDF)),
	)

	key := keyPrefix + uuid.NewString() + ".pdf"
	if err := d.objects.Put(ctx, key, bytes.NewReader(staged.PDF), int64(len(staged.PDF)), mimePDF); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store file")
	}

	var doc *domain.Document
	if err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		doc, err = tx.StoreDocument(ctx, domain.Document{
			UploaderID:  userID,
			Title:       meta.Title,
			Description: meta.Description,
			Subject:     meta.Subject,
			Medium:      meta.Medium,
			DocType:     meta.DocType,
			Year:        meta.Year,
			FileKey:     key,
			FileName:    staged.FileName,
			ContentType: mimePDF,
			FileSize:    int64(len(staged.PDF)),
			PageCount:   staged.Pages,
			Status:      domain.DocumentStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store document: %w", err)
		}

		if _, err := tx.AddJob(ctx, NewReviewJob(uuid.UUID(doc.ID), d.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add review job: %w", err)
		}

		return nil
	}); err != nil {
		// the request context may already be done; the orphan must go either way
		if delErr := d.objects.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			logger.Error(ctx, "could not remove orphaned upload", zap.String("key", key), zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not upload document: %w", err)
	}

	metrics.Count(ctx, d.instruments.Uploads, "doc_type", string(doc.DocType))
	logger.Info(ctx, "document uploaded",
		zap.String("documentID", doc.ID.String()),
		zap.String("source", staged.SourceKind),
		zap.Int("pages", staged.Pages))

	return doc, nil
}

func (d *documents) List(ctx context.Context,
	viewer domain.UserID,
	filter domain.DocumentFilter,
	cursor string,
	limit int) ([]domain.Document, string, error) {
	switch filter.Sort {
	case "", domain.SortNewest, domain.SortMostDownloads, domain.SortTopVoted:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown sort %q", filter.Sort)
	}
	filter.Query = strings.TrimSpace(filter.Query)

	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	res, err := d.storage.ListDocuments(ctx, filter, viewer, page)
	if err != nil {
		return nil, "", fmt.Errorf("could not list documents: %w", err)
	}

	return pagination.Trim(page, res), page.Next(len(res)), nil
}

func viewerID(viewer *domain.User) domain.UserID {
	if viewer == nil {
		return ""
	}

	return viewer.ID
}

func (d *documents) Get(ctx context.Context, viewer *domain.User, ID domain.DocumentID) (*domain.Document, error) {
	doc, err := d.storage.DocumentByID(ctx, ID, viewerID(viewer))
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	// hidden documents are reported as missing rather than forbidden
	if doc == nil || !doc.VisibleTo(viewer) {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	return doc, nil
}

func (d *documents) Download(ctx context.Context, viewer *domain.User, ID domain.DocumentID) (*Download, error) {
	doc, err := d.Get(ctx, viewer, ID)
	if err != nil {
		return nil, err
	}

	expiresAt := d.now().Add(d.options.PresignTTL)
	URL, err := d.objects.PresignGet(ctx, doc.FileKey, doc.FileName, d.options.PresignTTL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create download link")
	}

	if err := d.storage.IncrementDownloads(ctx, ID); err != nil {
		return nil, fmt.Errorf("could not count download: %w", err)
	}
	metrics.Count(ctx, d.instruments.Downloads, "doc_type", string(doc.DocType))

	return &Download{URL: URL, FileName: doc.FileName, ExpiresAt: expiresAt}, nil
}

func (d *documents) Vote(ctx context.Context,
	userID domain.UserID,
	ID domain.DocumentID,
	value int) (*domain.VoteTally, error) {
	if value < domain.VoteDown || value > domain.VoteUp {
		return nil, serrors.With(serrors.ErrBadRequest, "vote must be -1, 0 or 1")
	}

	var tally domain.VoteTally
	if err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		doc, err := tx.LockDocumentByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not lock document: %w", err)
		}
		if doc == nil || doc.Status != domain.DocumentStatusApproved {
			return serrors.With(serrors.ErrNotFound, "document not found")
		}
		if doc.UploaderID == userID {
			return serrors.With(serrors.ErrForbidden, "you cannot vote on your own document")
		}

		tally, err = tx.SetVote(ctx, ID, userID, value)
		if err != nil {
			return fmt.Errorf("could not set vote: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not vote: %w", err)
	}
	metrics.Count(ctx, d.instruments.Votes, "value", strconv.Itoa(value))

	return &tally, nil
}

func (d *documents) Flag(ctx context.Context,
	userID domain.UserID,
	ID domain.DocumentID,
	reason string) (*domain.Flag, error) {
	reason = strings.TrimSpace(reason)
	if n := utf8.RuneCountInString(reason); n < minFlagReasonLen || n > maxFlagReasonLen {
		return nil, serrors.Invalid([]serrors.FieldError{{
			Field: "reason",
			Error: fmt.Sprintf("must be %d to %d characters", minFlagReasonLen, maxFlagReasonLen),
		}}, "invalid flag")
	}

	doc, err := d.storage.DocumentByID(ctx, ID, "")
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if doc == nil || doc.Status != domain.DocumentStatusApproved {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}
	if doc.UploaderID == userID {
		return nil, serrors.With(serrors.ErrForbidden, "you cannot flag your own document")
	}

	flag, created, err := d.storage.StoreFlag(ctx, domain.Flag{DocumentID: ID, UserID: userID, Reason: reason})
	if err != nil {
		return nil, fmt.Errorf("could not store flag: %w", err)
	}
	if !created {
		return nil, serrors.With(serrors.ErrConflict, "you already flagged this document")
	}

	return flag, nil
}

func (d *documents) Delete(ctx context.Context, viewer *domain.User, ID domain.DocumentID) error {
	doc, err := d.Get(ctx, viewer, ID)
	if err != nil {
		return err
	}
	if !viewer.IsAdmin() && doc.UploaderID != viewerID(viewer) {
		return serrors.With(serrors.ErrForbidden, "only the uploader can delete this document")
	}

	res, err := d.storage.SoftDeleteDocument(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete document: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "document not found")
	}

	// the file is removed by the purge job once the retention passed
	return nil
}

func (d *documents) MyUploads(ctx context.Context,
	userID domain.UserID,
	status domain.DocumentStatus,
	cursor string,
	limit int) ([]domain.Document, string, error) {
	switch status {
	case "", domain.DocumentStatusPending, domain.DocumentStatusApproved, domain.DocumentStatusRejected:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	page, err := pagination.New(cursor, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	res, err := d.storage.UserDocuments(ctx, userID, status, page)
	if err != nil {
		return nil, "", fmt.Errorf("could not get uploads: %w", err)
	}

	return pagination.Trim(page, res), page.Next(len(res)), nil
}
