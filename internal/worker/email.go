package worker

import (
	"context"
	"fmt"
	"strings"
	"studyshare/internal/notifications"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/mailer"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationEmailWorker mails a stored notification to its user. A
// notification is mailed at most once; emailed_at is stamped after a
// successful send and checked before sending.
type NotificationEmailWorker struct {
	river.WorkerDefaults[notifications.EmailJobArgs]

	storage storage.Storage
	sender  mailer.Sender
	siteURL string
}

// NewNotificationEmailWorker creates the email worker. siteURL is the
// public web app address used in links.
func NewNotificationEmailWorker(storage storage.Storage,
	sender mailer.Sender,
	siteURL string) *NotificationEmailWorker {
	return &NotificationEmailWorker{
		storage: storage,
		sender:  sender,
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

func (w *NotificationEmailWorker) Work(ctx context.Context, job *river.Job[notifications.EmailJobArgs]) error {
	ID := domain.NotificationID(job.Args.NotificationID)
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("notificationID", job.Args.NotificationID.String()))

	n, err := w.storage.NotificationByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get notification: %w", err)
	}
	if n == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "notification not found")) //nolint: wrapcheck
	}
	if !n.EmailedAt.IsZero() {
		logger.Info(ctx, "notification already emailed")

		return nil
	}

	user, err := w.storage.UserByID(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.Email == "" {
		logger.Info(ctx, "user has no email address, skipping")

		return nil
	}

	html, err := mailer.RenderNotification(mailer.NotificationData{
		Name:    user.Name,
		Title:   n.Title,
		Body:    n.Body,
		Link:    w.link(n),
		SiteURL: w.siteURL,
	})
	if err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	messageID, err := w.sender.Send(ctx, mailer.Message{
		To:      user.Email,
		Subject: n.Title,
		HTML:    html,
	})
	if err != nil {
		logger.Error(ctx, "error in sending notification email", zap.Error(err))

		return fmt.Errorf("could not send notification email: %w", err)
	}

	if err := w.storage.MarkNotificationEmailed(ctx, ID); err != nil {
		// The mail is out; retrying would send it twice.
		logger.Error(ctx, "could not stamp emailed notification", zap.Error(err))

		return nil
	}

	logger.Info(ctx, "notification emailed", zap.String("messageID", messageID))

	return nil
}

func (w *NotificationEmailWorker) link(n *domain.Notification) string {
	switch {
	case n.DocumentID != nil:
		return w.siteURL + "/documents/" + n.DocumentID.String()
	case n.Kind == domain.NotificationThankYou:
		return w.siteURL + "/me/messages"
	default:
		return w.siteURL + "/me/notifications"
	}
}
