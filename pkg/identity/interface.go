// Package identity looks up profiles at the hosted identity provider.
package identity

import (
	"context"
	"errors"
	"studyshare/pkg/domain"
)

// ErrUnknownUser is returned when the provider has no user with the given id.
var ErrUnknownUser = errors.New("unknown user")

// Profile is the provider's view of a user.
type Profile struct {
	Email    string
	Name     string
	ImageURL string
	// Role is set when the provider stores one in the user's public metadata.
	Role domain.Role
}

// Provider fetches user profiles.
//
//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Provider interface {
	Profile(ctx context.Context, ID domain.UserID) (*Profile, error)
}
