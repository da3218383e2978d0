package postgres_test

import (
	"testing"

	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Messages(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	seedUser(t, pg, "alice", "")
	seedUser(t, pg, "bob", "")
	doc := seedDocument(t, pg, "alice", "notes", domain.DocumentStatusApproved)

	msg, err := pg.StoreMessage(ctx, domain.ThankYouMessage{
		DocumentID:  doc.ID,
		SenderID:    "bob",
		RecipientID: "alice",
		Body:        "helped a lot",
	})
	require.NoError(t, err)
	require.Equal(t, domain.VerdictAppropriate, msg.Moderation)

	_, err = pg.StoreMessage(ctx, domain.ThankYouMessage{
		DocumentID:  doc.ID,
		SenderID:    "bob",
		RecipientID: "alice",
		Body:        "again",
		Moderation:  domain.VerdictUnverified,
	})
	require.NoError(t, err)

	msgs, err := pg.UserMessages(ctx, "alice", pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "again", msgs[0].Body)
	require.Equal(t, domain.VerdictUnverified, msgs[0].Moderation)
	require.Equal(t, "User bob", msgs[0].SenderName)
	require.Equal(t, "notes", msgs[0].DocumentTitle)

	msgs, err = pg.UserMessages(ctx, "bob", pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestPgSQL_Recommendations(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	seedUser(t, pg, "alice", "")
	seedUser(t, pg, "bob", "")
	doc := seedDocument(t, pg, "bob", "notes", domain.DocumentStatusApproved)

	rec, err := pg.StoreRecommendation(ctx, domain.Recommendation{
		RequesterID: "alice",
		Subject:     domain.SubjectHistory,
		Medium:      domain.MediumSinhala,
		DocType:     domain.DocTypeModelPaper,
		Description: "grade 11 model papers",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RecommendationOpen, rec.Status)
	require.Nil(t, rec.DocumentID)

	by := domain.UserID("bob")
	fulfilled, err := pg.TransitionRecommendation(ctx, rec.ID, domain.RecommendationOpen, storage.RecommendationUpdates{
		Status:      domain.RecommendationFulfilled,
		DocumentID:  &doc.ID,
		FulfilledBy: &by,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RecommendationFulfilled, fulfilled.Status)
	require.Equal(t, doc.ID, *fulfilled.DocumentID)
	require.Equal(t, by, fulfilled.FulfilledBy)

	// not open anymore
	again, err := pg.TransitionRecommendation(ctx, rec.ID, domain.RecommendationOpen, storage.RecommendationUpdates{
		Status: domain.RecommendationClosed,
	})
	require.NoError(t, err)
	require.Nil(t, again)

	got, err := pg.RecommendationByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RecommendationFulfilled, got.Status)

	open, err := pg.ListRecommendations(ctx, domain.RecommendationOpen, pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, open)
	all, err := pg.ListRecommendations(ctx, "", pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 1)

	missing, err := pg.RecommendationByID(ctx, domain.RecommendationID{})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Notifications(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := t.Context()

	seedUser(t, pg, "alice", "")
	doc := seedDocument(t, pg, "alice", "notes", domain.DocumentStatusApproved)

	first, err := pg.StoreNotification(ctx, domain.Notification{
		UserID:     "alice",
		Kind:       domain.NotificationDocumentApproved,
		Title:      "Your document was approved",
		DocumentID: &doc.ID,
	})
	require.NoError(t, err)
	require.Equal(t, doc.ID, *first.DocumentID)

	second, err := pg.StoreNotification(ctx, domain.Notification{
		UserID: "alice",
		Kind:   domain.NotificationThankYou,
		Title:  "Someone thanked you",
	})
	require.NoError(t, err)
	require.Nil(t, second.DocumentID)

	count, err := pg.UnreadCount(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	changed, err := pg.MarkNotificationsRead(ctx, "alice", []domain.NotificationID{first.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	unread, err := pg.UserNotifications(ctx, "alice", true, pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, second.ID, unread[0].ID)

	// other users cannot mark them
	changed, err = pg.MarkNotificationsRead(ctx, "bob", nil)
	require.NoError(t, err)
	require.Zero(t, changed)

	changed, err = pg.MarkNotificationsRead(ctx, "alice", nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	all, err := pg.UserNotifications(ctx, "alice", false, pagination.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.False(t, all[0].ReadAt.IsZero())

	require.NoError(t, pg.MarkNotificationEmailed(ctx, first.ID))
	got, err := pg.NotificationByID(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, got.EmailedAt.IsZero())
}
