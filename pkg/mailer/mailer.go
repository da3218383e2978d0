// Package mailer renders and sends transactional emails.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

var tmpl = template.Must(template.ParseFS(templates, "templates/*.html")) //nolint: gochecknoglobals

// Message is a single email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers emails and returns the provider's message id.
//
//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go *
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NotificationData fills the notification template.
type NotificationData struct {
	Name  string
	Title string
	Body  string
	// Link points at the related page of the web app; may be empty.
	Link    string
	SiteURL string
}

// RenderNotification renders the notification email body.
func RenderNotification(data NotificationData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "notification.html", data); err != nil {
		return "", fmt.Errorf("could not render notification email: %w", err)
	}

	return body.String(), nil
}
