package postgres_test

import (
	"testing"

	"studyshare/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertUser(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	created := seedUser(t, pg, "user_1", domain.RoleAdmin)
	require.Equal(t, domain.UserID("user_1"), created.ID)
	require.Equal(t, domain.RoleAdmin, created.Role)
	require.False(t, created.CreatedAt.IsZero())

	// empty role keeps the stored one
	updated, err := pg.UpsertUser(ctx, domain.User{ID: "user_1", Email: "new@example.com", Name: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "new@example.com", updated.Email)
	require.Equal(t, domain.RoleAdmin, updated.Role)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	got, err := pg.UserByID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)

	missing, err := pg.UserByID(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UserStatsAndTopContributors(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	seedUser(t, pg, "alice", "")
	seedUser(t, pg, "bob", "")
	seedUser(t, pg, "carol", "")

	a1 := seedDocument(t, pg, "alice", "a1", domain.DocumentStatusApproved)
	seedDocument(t, pg, "alice", "a2", domain.DocumentStatusApproved)
	seedDocument(t, pg, "alice", "a3", domain.DocumentStatusPending)
	b1 := seedDocument(t, pg, "bob", "b1", domain.DocumentStatusApproved)
	seedDocument(t, pg, "carol", "c1", domain.DocumentStatusRejected)

	require.NoError(t, pg.IncrementDownloads(ctx, a1.ID))
	for range 5 {
		require.NoError(t, pg.IncrementDownloads(ctx, b1.ID))
	}
	_, err := pg.StoreMessage(ctx, domain.ThankYouMessage{
		DocumentID:  a1.ID,
		SenderID:    "bob",
		RecipientID: "alice",
		Body:        "thanks!",
	})
	require.NoError(t, err)

	stats, err := pg.UserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, domain.UserStats{
		PendingUploads:   1,
		ApprovedUploads:  2,
		RejectedUploads:  0,
		Downloads:        1,
		UpvotesReceived:  0,
		MessagesReceived: 1,
	}, stats)

	empty, err := pg.UserStats(ctx, "nobody")
	require.NoError(t, err)
	require.Equal(t, domain.UserStats{}, empty)

	top, err := pg.TopContributors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, domain.UserID("alice"), top[0].User.ID)
	require.Equal(t, 2, top[0].ApprovedUploads)
	require.Equal(t, domain.UserID("bob"), top[1].User.ID)
	require.Equal(t, 5, top[1].Downloads)

	top, err = pg.TopContributors(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
}
