// Package resendmail implements mailer.Sender with Resend.
package resendmail

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"studyshare/pkg/mailer"

	"github.com/resend/resend-go/v2"
)

// Options configure the Resend client.
type Options struct {
	APIKey string
	// From is the sender, e.g. "StudyShare <noreply@studyshare.lk>".
	From string
	// BaseURL overrides the Resend API url.
	BaseURL string
}

// Sender sends emails through the Resend API.
type Sender struct {
	client *resend.Client
	from   string
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a Resend sender.
func New(httpClient *http.Client, opts Options) (*Sender, error) {
	client := resend.NewCustomClient(httpClient, opts.APIKey)
	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("could not parse resend url: %w", err)
		}
		client.BaseURL = u
	}

	return &Sender{client: client, from: opts.From}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("could not send email: %w", err)
	}

	return sent.Id, nil
}
