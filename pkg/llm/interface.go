// Package llm defines the chat completion abstraction used to categorize
// documents and moderate user content.
package llm

import (
	"context"
	"time"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying model gateway.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Known reports whether the gateway sent rate-limit headers at all.
func (s RateLimitStatus) Known() bool {
	return s.Limit > 0 || !s.ResetAt.IsZero()
}

// Attachment is a file sent along with the prompt. PDFs are sent as file
// parts and images as image parts.
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// Request is a single-turn completion request.
type Request struct {
	// Model overrides the client's default model when set.
	Model       string
	System      string
	Prompt      string
	Attachments []Attachment
	MaxTokens   int
	Temperature float64
}

// Response is the text reply of the model.
type Response struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Client is the abstraction for chat completion gateways.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	// Complete sends req and returns the reply plus the current rate-limit
	// status. A 429 reply is reported as serrors.ErrRateLimited.
	Complete(ctx context.Context, req Request) (*Response, RateLimitStatus, error)
}
