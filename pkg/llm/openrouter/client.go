// Package openrouter provides an llm.Client implementation backed by the
// OpenRouter chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"studyshare/pkg/llm"
	"studyshare/pkg/serrors"
	"time"
)

// DefaultBaseURL is the public OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	APIKey  string
	// Model is used when a request does not name one.
	Model string
	// SiteURL and SiteName are sent as HTTP-Referer and X-Title for
	// OpenRouter's app attribution.
	SiteURL  string
	SiteName string
}

// Client talks to the OpenRouter REST API and fulfills the llm.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// ParseRateLimit extracts OpenRouter rate-limit information from the HTTP
// response headers. Missing headers yield a zero status; X-RateLimit-Reset is
// a unix timestamp in milliseconds.
func ParseRateLimit(h http.Header) (llm.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	rl := llm.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
	}

	resetStr := h.Get("X-RateLimit-Reset")
	if resetStr == "" {
		return rl, nil
	}
	ms, err := strconv.ParseInt(resetStr, 10, 64)
	if err != nil {
		return rl, fmt.Errorf("could not parse reset at: %w", err)
	}
	rl.ResetAt = time.UnixMilli(ms).UTC()

	return rl, nil
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
	File     *filePart `json:"file,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type filePart struct {
	FileName string `json:"filename"`
	FileData string `json:"file_data"`
}

type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func buildRequest(model string, req llm.Request) chatRequest {
	if req.Model != "" {
		model = req.Model
	}

	var messages []message
	if req.System != "" {
		messages = append(messages, message{Role: "system", Content: req.System})
	}
	if len(req.Attachments) == 0 {
		messages = append(messages, message{Role: "user", Content: req.Prompt})
	} else {
		parts := []contentPart{{Type: "text", Text: req.Prompt}}
		for _, a := range req.Attachments {
			if strings.HasPrefix(a.MIMEType, "image/") {
				parts = append(parts, contentPart{
					Type:     "image_url",
					ImageURL: &imageURL{URL: dataURL(a.MIMEType, a.Data)},
				})

				continue
			}
			parts = append(parts, contentPart{
				Type: "file",
				File: &filePart{FileName: a.FileName, FileData: dataURL(a.MIMEType, a.Data)},
			})
		}
		messages = append(messages, message{Role: "user", Content: parts})
	}

	return chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
}

// Complete sends a single-turn chat completion request.
func (c *Client) Complete(ctx context.Context, req llm.Request) (*llm.Response, llm.RateLimitStatus, error) {
	// https://openrouter.ai/docs/api-reference/chat-completion
	bodyBytes, err := json.Marshal(buildRequest(c.opts.Model, req))
	if err != nil {
		return nil, llm.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimSuffix(c.opts.BaseURL, "/")+"/chat/completions",
		bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, llm.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	if c.opts.SiteURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.opts.SiteURL)
	}
	if c.opts.SiteName != "" {
		httpReq.Header.Set("X-Title", c.opts.SiteName)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, llm.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode >= 500:
		return nil, rl, serrors.With(serrors.ErrUnavailable, "completion failed with %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, rl, fmt.Errorf("completion failed with %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var cr chatResponse
	if err := json.Unmarshal(b, &cr); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if cr.Error != nil {
		return nil, rl, fmt.Errorf("completion failed: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return nil, rl, fmt.Errorf("completion returned no choices")
	}

	return &llm.Response{
		Text:             cr.Choices[0].Message.Content,
		Model:            cr.Model,
		PromptTokens:     cr.Usage.PromptTokens,
		CompletionTokens: cr.Usage.CompletionTokens,
	}, rl, nil
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
	}
}
