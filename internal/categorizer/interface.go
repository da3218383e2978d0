package categorizer

import (
	"context"
	"studyshare/pkg/domain"
	"studyshare/pkg/llm"
)

// Input is a document ready for the model.
type Input struct {
	FileName string
	PDF      []byte
	// Hint is an optional title typed by the uploader.
	Hint string
}

// Moderation is the outcome of a message check.
type Moderation struct {
	Verdict domain.Verdict
	Reason  string
}

//go:generate mockgen -package mockcategorizer -source=interface.go -destination=mock/mockcategorizer.go *
type Categorizer interface {
	Categorize(ctx context.Context, in Input) domain.Categorization
	ReviewDocument(ctx context.Context, in Input) (domain.Review, llm.RateLimitStatus, error)
	ModerateMessage(ctx context.Context, body string) Moderation
}
