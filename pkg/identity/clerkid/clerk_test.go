package clerkid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"studyshare/pkg/domain"
	"studyshare/pkg/identity"
	"studyshare/pkg/identity/clerkid"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *clerkid.Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return clerkid.New(srv.Client(), clerkid.Options{SecretKey: "sk_test_123", URL: srv.URL})
}

func TestProfile(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.True(t, strings.HasSuffix(r.URL.Path, "/users/user_1"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "user",
			"id": "user_1",
			"first_name": "Nimal",
			"last_name": "Perera",
			"image_url": "https://img.example.com/u1.png",
			"primary_email_address_id": "idn_2",
			"email_addresses": [
				{"id": "idn_1", "object": "email_address", "email_address": "old@example.com"},
				{"id": "idn_2", "object": "email_address", "email_address": "nimal@example.com"}
			],
			"public_metadata": {"role": "admin"}
		}`))
	})

	profile, err := p.Profile(context.Background(), "user_1")
	require.NoError(t, err)
	require.Equal(t, &identity.Profile{
		Email:    "nimal@example.com",
		Name:     "Nimal Perera",
		ImageURL: "https://img.example.com/u1.png",
		Role:     domain.RoleAdmin,
	}, profile)
}

func TestProfile_NameFallsBackToEmail(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"user","id":"user_2","email_addresses":[` +
			`{"id":"idn_1","object":"email_address","email_address":"kamala@example.com"}],"public_metadata":{}}`))
	})

	profile, err := p.Profile(context.Background(), "user_2")
	require.NoError(t, err)
	require.Equal(t, "kamala", profile.Name)
	require.Equal(t, "kamala@example.com", profile.Email)
	require.Empty(t, profile.Role)
}

func TestProfile_NotFound(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"code":"resource_not_found","message":"not found"}]}`))
	})

	_, err := p.Profile(context.Background(), "user_3")
	require.ErrorIs(t, err, identity.ErrUnknownUser)
}
