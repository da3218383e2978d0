package notifications

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// EmailJobArgs asks the email worker to mail a stored notification.
type EmailJobArgs struct {
	NotificationID uuid.UUID `json:"notification_id"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the email worker.
func (args EmailJobArgs) Kind() string { return "NotificationEmailJob" }

// InsertOpts limits retries; one email per notification is guaranteed by
// the emailed_at stamp rather than job uniqueness.
func (args EmailJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		Queue:       QueueEmail,
	}
}

// QueueEmail is the River queue email jobs run on.
const QueueEmail = "email"
