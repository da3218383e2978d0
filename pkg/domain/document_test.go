package domain_test

import (
	"studyshare/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDocument_VisibleTo(t *testing.T) {
	uploader := &domain.User{ID: "user_up", Role: domain.RoleUser}
	other := &domain.User{ID: "user_other", Role: domain.RoleUser}
	admin := &domain.User{ID: "user_admin", Role: domain.RoleAdmin}

	approved := &domain.Document{UploaderID: uploader.ID, Status: domain.DocumentStatusApproved}
	require.True(t, approved.VisibleTo(nil))
	require.True(t, approved.VisibleTo(other))

	for _, status := range []domain.DocumentStatus{domain.DocumentStatusPending, domain.DocumentStatusRejected} {
		doc := &domain.Document{UploaderID: uploader.ID, Status: status}
		require.False(t, doc.VisibleTo(nil), status)
		require.False(t, doc.VisibleTo(other), status)
		require.True(t, doc.VisibleTo(uploader), status)
		require.True(t, doc.VisibleTo(admin), status)
	}
}

func TestDocument_Score(t *testing.T) {
	doc := &domain.Document{Upvotes: 3, Downvotes: 7}
	require.Equal(t, -4, doc.Score())
}

func TestValidYear(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, domain.ValidYear(0, now))
	require.True(t, domain.ValidYear(1990, now))
	require.True(t, domain.ValidYear(2026, now))
	require.False(t, domain.ValidYear(1989, now))
	require.False(t, domain.ValidYear(2027, now))
}
