// Package categorizer asks a language model to catalogue uploaded documents
// and to screen documents and messages. Every operation degrades to safe
// defaults when the model is unavailable or answers nonsense.
package categorizer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"studyshare/internal/config"
	"studyshare/pkg/convert"
	"studyshare/pkg/domain"
	"studyshare/pkg/llm"
	"studyshare/pkg/logger"
	"studyshare/pkg/metrics"
	"studyshare/pkg/serrors"
	"time"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	opCategorize = "categorize"
	opReview     = "review"
	opModerate   = "moderate"

	maxTitleLen = 200
)

// Options tunes the model calls.
type Options struct {
	// Model reads attached files.
	Model string
	// TextModel answers text-only prompts.
	TextModel string
	// SamplePages is the number of leading pages attached to prompts.
	SamplePages int
	// MaxTextChars caps the extracted text added to prompts.
	MaxTextChars int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Model:        cfg.LLM.Model,
		TextModel:    cfg.LLM.TextModel,
		SamplePages:  cfg.LLM.SamplePages,
		MaxTextChars: cfg.LLM.MaxTextChars,
	}
}

// categorizer is safe for concurrent use.
type categorizer struct {
	client      llm.Client
	opts        Options
	instruments *metrics.Instruments
	tracer      trace.Tracer
	now         func() time.Time
}

// New creates a Categorizer on top of client.
func New(client llm.Client, instruments *metrics.Instruments, opts Options) Categorizer {
	if opts.SamplePages <= 0 {
		opts.SamplePages = 3
	}
	if opts.MaxTextChars <= 0 {
		opts.MaxTextChars = 4000
	}
	if opts.TextModel == "" {
		opts.TextModel = opts.Model
	}

	return &categorizer{
		client:      client,
		opts:        opts,
		instruments: instruments,
		tracer:      otel.Tracer("studyshare/categorizer"),
		now:         time.Now,
	}
}

// TitleFromFileName turns "combined_maths-2019 (1).pdf" into
// "Combined maths 2019 (1)".
func TitleFromFileName(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" || base == "/" {
		return "Untitled document"
	}

	r := []rune(base)
	r[0] = unicode.ToUpper(r[0])

	return truncateRunes(string(r), maxTitleLen)
}

// Fallback is the categorization used when the model cannot help.
func Fallback(fileName string) domain.Categorization {
	return domain.Categorization{
		Title:    TitleFromFileName(fileName),
		Subject:  domain.SubjectOther,
		Medium:   domain.MediumEnglish,
		DocType:  domain.DocTypeNotes,
		Fallback: true,
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return strings.TrimSpace(string(r[:n]))
}

// prepare builds the attachment and the text excerpt of in. Failures only
// shrink the prompt.
func (c *categorizer) prepare(ctx context.Context, in Input) ([]llm.Attachment, string) {
	if len(in.PDF) == 0 {
		return nil, ""
	}

	text, err := convert.ExtractText(in.PDF, c.opts.SamplePages, c.opts.MaxTextChars)
	if err != nil {
		logger.Debug(ctx, "could not extract text", zap.Error(err))
	}

	sample, err := convert.SamplePDF(in.PDF, c.opts.SamplePages)
	if err != nil {
		logger.Debug(ctx, "could not sample pdf, sending text only", zap.Error(err))

		return nil, text
	}

	return []llm.Attachment{{
		FileName: "sample.pdf",
		MIMEType: "application/pdf",
		Data:     sample,
	}}, text
}

func (c *categorizer) complete(ctx context.Context, op string, req llm.Request) (string, llm.RateLimitStatus, error) {
	start := time.Now()
	defer c.instruments.ObserveLLM(ctx, op, start)

	res, rl, err := c.client.Complete(ctx, req)
	if err != nil {
		return "", rl, err
	}

	obj, ok := firstObject(res.Text)
	if !ok {
		return "", rl, errors.New("reply has no json object")
	}

	return obj, rl, nil
}

// Categorize suggests metadata for a document. It never fails: on any model
// or parse error the Fallback categorization is returned. Fields the model
// leaves out or gets wrong take their fallback value.
func (c *categorizer) Categorize(ctx context.Context, in Input) domain.Categorization {
	ctx, span := c.tracer.Start(ctx, "categorizer.Categorize",
		trace.WithAttributes(attribute.Int("pdf.bytes", len(in.PDF))))
	defer span.End()

	fallback := Fallback(in.FileName)
	in.Hint = strings.TrimSpace(in.Hint)

	attachments, text := c.prepare(ctx, in)
	obj, _, err := c.complete(ctx, opCategorize, llm.Request{
		Model:       c.opts.Model,
		System:      categorizeSystem,
		Prompt:      categorizePrompt(in.FileName, in.Hint, text),
		Attachments: attachments,
		MaxTokens:   300,
	})
	if err != nil {
		logger.Warn(ctx, "categorization failed, using defaults", zap.Error(err))
		c.instruments.Fallback(ctx, opCategorize)
		span.RecordError(err)

		return fallback
	}

	f, err := decodeFields(obj)
	if err != nil {
		logger.Warn(ctx, "could not decode categorization", zap.Error(err), zap.String("reply", obj))
		c.instruments.Fallback(ctx, opCategorize)

		return fallback
	}

	out := fallback
	out.Fallback = false
	out.Model = c.opts.Model
	if title := f.first("title"); title != "" {
		out.Title = truncateRunes(title, maxTitleLen)
	}
	if s, ok := domain.ParseSubject(f.first("subject")); ok {
		out.Subject = s
	}
	if m, ok := domain.ParseMedium(f.first("medium", "language")); ok {
		out.Medium = m
	}
	if t, ok := domain.ParseDocType(f.first("doc_type", "doctype", "type")); ok {
		out.DocType = t
	}
	if y := f.int("year"); domain.ValidYear(y, c.now()) {
		out.Year = y
	}
	out.Confidence = min(max(f.float("confidence"), 0), 1)

	span.SetAttributes(
		attribute.String("subject", string(out.Subject)),
		attribute.Float64("confidence", out.Confidence),
	)

	return out
}

// ReviewDocument screens a stored document. Model failures yield an
// appropriate, unverified review, except rate limiting, which is returned
// as serrors.ErrRateLimited together with the gateway status so the caller
// can retry later.
func (c *categorizer) ReviewDocument(ctx context.Context, in Input) (domain.Review, llm.RateLimitStatus, error) {
	ctx, span := c.tracer.Start(ctx, "categorizer.ReviewDocument")
	defer span.End()

	fallback := domain.Review{
		Verdict:         domain.VerdictUnverified,
		IsStudyMaterial: true,
		ReviewedAt:      c.now(),
	}

	attachments, text := c.prepare(ctx, in)
	obj, rl, err := c.complete(ctx, opReview, llm.Request{
		Model:       c.opts.Model,
		System:      reviewSystem,
		Prompt:      reviewPrompt(in.FileName, text),
		Attachments: attachments,
		MaxTokens:   200,
	})
	if errors.Is(err, serrors.ErrRateLimited) {
		return domain.Review{}, rl, err
	}
	if err != nil {
		logger.Warn(ctx, "document review failed, leaving it unverified", zap.Error(err))
		c.instruments.Fallback(ctx, opReview)

		return fallback, rl, nil
	}

	f, err := decodeFields(obj)
	if err != nil {
		c.instruments.Fallback(ctx, opReview)

		return fallback, rl, nil
	}
	appropriate, ok := f.bool("appropriate")
	if !ok {
		c.instruments.Fallback(ctx, opReview)

		return fallback, rl, nil
	}
	study, ok := f.bool("is_study_material", "study_material")
	if !ok {
		study = true
	}

	review := domain.Review{
		Verdict:         domain.VerdictAppropriate,
		IsStudyMaterial: study,
		Reason:          truncateRunes(f.first("reason"), 500),
		ReviewedAt:      c.now(),
	}
	if !appropriate {
		review.Verdict = domain.VerdictInappropriate
	}

	return review, rl, nil
}

// ModerateMessage checks a thank-you note. It fails open: when the model
// cannot answer the note is let through as unverified.
func (c *categorizer) ModerateMessage(ctx context.Context, body string) Moderation {
	ctx, span := c.tracer.Start(ctx, "categorizer.ModerateMessage")
	defer span.End()

	obj, _, err := c.complete(ctx, opModerate, llm.Request{
		Model:     c.opts.TextModel,
		System:    moderateSystem,
		Prompt:    moderatePrompt(body),
		MaxTokens: 120,
	})
	if err != nil {
		logger.Warn(ctx, "message moderation failed, letting it through", zap.Error(err))
		c.instruments.Fallback(ctx, opModerate)

		return Moderation{Verdict: domain.VerdictUnverified}
	}

	f, err := decodeFields(obj)
	if err != nil {
		c.instruments.Fallback(ctx, opModerate)

		return Moderation{Verdict: domain.VerdictUnverified}
	}
	appropriate, ok := f.bool("appropriate")
	if !ok {
		c.instruments.Fallback(ctx, opModerate)

		return Moderation{Verdict: domain.VerdictUnverified}
	}
	if !appropriate {
		reason := f.first("reason")
		if reason == "" {
			reason = "message is not appropriate"
		}

		return Moderation{Verdict: domain.VerdictInappropriate, Reason: truncateRunes(reason, 300)}
	}

	return Moderation{Verdict: domain.VerdictAppropriate}
}
