package storage

import (
	"context"
	"studyshare/pkg/domain"
)

// UserStorage persists members synced from the identity provider.
type UserStorage interface {
	// UpsertUser inserts the user or refreshes email, name, image and role of
	// an existing row, returning the stored row.
	UpsertUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when it does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserStats aggregates uploads, downloads, votes and messages of a user.
	UserStats(ctx context.Context, ID domain.UserID) (domain.UserStats, error)
	// TopContributors orders users by approved uploads, then total downloads.
	TopContributors(ctx context.Context, limit uint) ([]domain.Contributor, error)
}
