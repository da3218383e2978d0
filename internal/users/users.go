// Package users keeps the local user table in step with the identity
// provider and serves profile data.
package users

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"studyshare/internal/config"
	"studyshare/pkg/domain"
	"studyshare/pkg/identity"
	"studyshare/pkg/logger"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTopLimit is the leaderboard size when none is requested.
	DefaultTopLimit = 10
	maxTopLimit     = 50
)

// Options configure user syncing.
type Options struct {
	// AdminUserIDs always get the admin role.
	AdminUserIDs []domain.UserID
	// SyncInterval is how long a synced user is trusted before the row is
	// refreshed again.
	SyncInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	admins := make([]domain.UserID, 0, len(cfg.Auth.AdminUserIDs))
	for _, id := range cfg.Auth.AdminUserIDs {
		admins = append(admins, domain.UserID(id))
	}

	return Options{
		AdminUserIDs: admins,
		SyncInterval: 10 * time.Minute,
	}
}

type cached struct {
	user     domain.User
	syncedAt time.Time
}

type users struct {
	options  Options
	storage  storage.Storage
	provider identity.Provider

	mu   sync.Mutex
	seen map[domain.UserID]cached
	now  func() time.Time
}

// New creates the user service. provider may be nil, in which case profile
// fields come from the token claims.
func New(storage storage.Storage, provider identity.Provider, options Options) Users {
	return &users{
		options:  options,
		storage:  storage,
		provider: provider,
		seen:     make(map[domain.UserID]cached),
		now:      time.Now,
	}
}

func (u *users) recent(ID domain.UserID) (*domain.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	c, ok := u.seen[ID]
	if !ok || u.now().Sub(c.syncedAt) > u.options.SyncInterval {
		return nil, false
	}
	user := c.user

	return &user, true
}

func (u *users) remember(user domain.User) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.seen[user.ID] = cached{user: user, syncedAt: u.now()}
}

func (u *users) roleOf(claims Claims, profile *identity.Profile) domain.Role {
	if slices.Contains(u.options.AdminUserIDs, claims.Subject) || claims.Role == domain.RoleAdmin {
		return domain.RoleAdmin
	}
	if profile != nil && profile.Role == domain.RoleAdmin {
		return domain.RoleAdmin
	}

	return domain.RoleUser
}

// Sync upserts the caller's row. The provider is consulted at most once per
// SyncInterval per user; failures there fall back to the token claims.
func (u *users) Sync(ctx context.Context, claims Claims) (*domain.User, error) {
	if claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}
	if user, ok := u.recent(claims.Subject); ok {
		return user, nil
	}

	user := domain.User{
		ID:       claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.ImageURL,
	}

	var profile *identity.Profile
	if u.provider != nil {
		p, err := u.provider.Profile(ctx, claims.Subject)
		switch {
		case errors.Is(err, identity.ErrUnknownUser):
			return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
		case err != nil:
			logger.Warn(ctx, "could not fetch profile, using token claims",
				zap.String("userID", string(claims.Subject)), zap.Error(err))
		default:
			profile = p
			user.Email = p.Email
			user.Name = p.Name
			user.ImageURL = p.ImageURL
		}
	}
	user.Role = u.roleOf(claims, profile)
	if user.Name == "" {
		user.Name = "Student"
	}

	stored, err := u.storage.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user: %w", err)
	}
	u.remember(*stored)

	return stored, nil
}

// Me returns the profile of userID with contribution stats.
func (u *users) Me(ctx context.Context, userID domain.UserID) (*Me, error) {
	user, err := u.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	stats, err := u.storage.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user stats: %w", err)
	}

	unread, err := u.storage.UnreadCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not count unread notifications: %w", err)
	}

	return &Me{User: *user, Stats: stats, UnreadCount: unread}, nil
}

// TopContributors returns the leaderboard.
func (u *users) TopContributors(ctx context.Context, limit uint) ([]domain.Contributor, error) {
	switch {
	case limit == 0:
		limit = DefaultTopLimit
	case limit > maxTopLimit:
		limit = maxTopLimit
	}

	res, err := u.storage.TopContributors(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get top contributors: %w", err)
	}

	return res, nil
}
