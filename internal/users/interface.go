package users

import (
	"context"
	"studyshare/pkg/domain"
)

// Claims is the part of a verified session token that identifies the caller.
type Claims struct {
	Subject  domain.UserID
	Email    string
	Name     string
	ImageURL string
	// Role is the role claimed by the token, if any.
	Role domain.Role
}

// Me is the profile page of the signed-in user.
type Me struct {
	domain.User
	Stats       domain.UserStats `json:"stats"`
	UnreadCount int              `json:"unreadNotifications"`
}

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Users interface {
	// Sync makes sure the caller has an up to date user row and returns it.
	Sync(ctx context.Context, claims Claims) (*domain.User, error)
	Me(ctx context.Context, userID domain.UserID) (*Me, error)
	TopContributors(ctx context.Context, limit uint) ([]domain.Contributor, error)
}
