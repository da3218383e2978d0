package domain

import "time"

// UserID uniquely identifies a user within the system.
// It holds the subject issued by the identity provider (e.g. "user_2abc...").
type UserID string

// Role grants access to parts of the API.
type Role string

const (
	// RoleUser is the default role of every signed-in student.
	RoleUser Role = "user"
	// RoleAdmin can moderate documents on the admin dashboard.
	RoleAdmin Role = "admin"
)

// User is a signed-in member of the community.
type User struct {
	// ID is the identity provider subject.
	ID UserID `json:"id"`
	// Email is the primary email address, used for notification emails.
	Email string `json:"email,omitempty"`
	// Name is the display name shown next to uploads and messages.
	Name string `json:"name"`
	// ImageURL points to the avatar hosted by the identity provider.
	ImageURL string `json:"imageUrl,omitempty"`
	// Role decides whether the user can moderate.
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether u may use the moderation dashboard.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserStats summarizes the contributions of a single user.
type UserStats struct {
	PendingUploads   int `json:"pendingUploads"`
	ApprovedUploads  int `json:"approvedUploads"`
	RejectedUploads  int `json:"rejectedUploads"`
	Downloads        int `json:"downloads"`
	UpvotesReceived  int `json:"upvotesReceived"`
	MessagesReceived int `json:"messagesReceived"`
}

// Contributor is a leaderboard entry.
type Contributor struct {
	User            User `json:"user"`
	ApprovedUploads int  `json:"approvedUploads"`
	Downloads       int  `json:"downloads"`
}
