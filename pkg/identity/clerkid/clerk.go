// Package clerkid implements identity.Provider with the Clerk backend API.
package clerkid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"studyshare/pkg/domain"
	"studyshare/pkg/identity"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

// Options configure the Clerk client.
type Options struct {
	SecretKey string
	// URL overrides the Clerk API base url.
	URL string
}

// Provider reads users from Clerk.
type Provider struct {
	users *user.Client
}

var _ identity.Provider = (*Provider)(nil)

// New creates a Clerk backed provider.
func New(httpClient *http.Client, opts Options) *Provider {
	config := &clerk.ClientConfig{}
	config.Key = clerk.String(opts.SecretKey)
	config.HTTPClient = httpClient
	if opts.URL != "" {
		config.URL = clerk.String(opts.URL)
	}

	return &Provider{users: user.NewClient(config)}
}

type publicMetadata struct {
	Role string `json:"role"`
}

// Profile implements identity.Provider.
func (p *Provider) Profile(ctx context.Context, ID domain.UserID) (*identity.Profile, error) {
	u, err := p.users.Get(ctx, string(ID))
	if err != nil {
		var apiErr *clerk.APIErrorResponse
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
			return nil, identity.ErrUnknownUser
		}

		return nil, fmt.Errorf("could not get clerk user: %w", err)
	}

	return toProfile(u), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func toProfile(u *clerk.User) *identity.Profile {
	profile := &identity.Profile{ImageURL: deref(u.ImageURL)}

	primary := deref(u.PrimaryEmailAddressID)
	for _, addr := range u.EmailAddresses {
		if addr == nil {
			continue
		}
		if profile.Email == "" || addr.ID == primary {
			profile.Email = addr.EmailAddress
		}
	}

	profile.Name = strings.TrimSpace(deref(u.FirstName) + " " + deref(u.LastName))
	if profile.Name == "" {
		profile.Name = deref(u.Username)
	}
	if profile.Name == "" {
		profile.Name, _, _ = strings.Cut(profile.Email, "@")
	}

	var meta publicMetadata
	if len(u.PublicMetadata) > 0 && json.Unmarshal(u.PublicMetadata, &meta) == nil &&
		domain.Role(meta.Role) == domain.RoleAdmin {
		profile.Role = domain.RoleAdmin
	}

	return profile
}
