package notifications_test

import (
	"context"
	"errors"
	"studyshare/internal/notifications"
	"studyshare/pkg/domain"
	"studyshare/pkg/pagination"
	"studyshare/pkg/serrors"
	"testing"

	mockstorage "studyshare/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotifications(t *testing.T, email bool) (*mockstorage.MockStorage,
	*mockstorage.MockAllStorage,
	notifications.Notifications) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	return st, tx, notifications.New(st, notifications.Options{EmailEnabled: email, MaxAttempts: 5})
}

func TestNotify_EnqueuesEmail(t *testing.T) {
	_, tx, n := newTestNotifications(t, true)

	id := uuid.New()
	tx.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.Notification) (*domain.Notification, error) {
			in.ID = domain.NotificationID(id)

			return &in, nil
		})
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(notifications.EmailJobArgs)
			require.True(t, ok)
			require.Equal(t, id, job.NotificationID)
			require.Equal(t, 5, job.InsertOpts().MaxAttempts)
			require.Equal(t, notifications.QueueEmail, job.InsertOpts().Queue)

			return true, nil
		})

	stored, err := n.Notify(context.Background(), tx, domain.Notification{
		UserID: "user_1",
		Kind:   domain.NotificationDocumentApproved,
		Title:  "approved",
	})
	require.NoError(t, err)
	require.Equal(t, domain.NotificationID(id), stored.ID)
}

func TestNotify_EmailDisabled(t *testing.T) {
	_, tx, n := newTestNotifications(t, false)

	tx.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in domain.Notification) (*domain.Notification, error) {
			return &in, nil
		})

	_, err := n.Notify(context.Background(), tx, domain.Notification{UserID: "user_1"})
	require.NoError(t, err)
}

func TestNotify_JobError(t *testing.T) {
	_, tx, n := newTestNotifications(t, true)

	tx.EXPECT().StoreNotification(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db"))

	_, err := n.Notify(context.Background(), tx, domain.Notification{UserID: "user_1"})
	require.Error(t, err)
}

func TestList_Pagination(t *testing.T) {
	st, _, n := newTestNotifications(t, false)

	st.EXPECT().UserNotifications(gomock.Any(), domain.UserID("user_1"), true, pagination.Page{Offset: 0, Limit: 2}).
		Return([]domain.Notification{{Title: "a"}, {Title: "b"}, {Title: "c"}}, nil)

	res, next, err := n.List(context.Background(), "user_1", true, "", 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, pagination.Encode(2), next)

	st.EXPECT().UserNotifications(gomock.Any(), domain.UserID("user_1"), true, pagination.Page{Offset: 2, Limit: 2}).
		Return([]domain.Notification{{Title: "c"}}, nil)

	res, next, err = n.List(context.Background(), "user_1", true, next, 2)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Empty(t, next)
}

func TestList_InvalidCursor(t *testing.T) {
	_, _, n := newTestNotifications(t, false)

	_, _, err := n.List(context.Background(), "user_1", false, "%%%", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestMarkRead(t *testing.T) {
	st, _, n := newTestNotifications(t, false)

	st.EXPECT().MarkNotificationsRead(gomock.Any(), domain.UserID("user_1"), gomock.Len(0)).Return(int64(4), nil)
	count, err := n.MarkRead(context.Background(), "user_1", nil)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)

	_, err = n.MarkRead(context.Background(), "user_1", make([]domain.NotificationID, 101))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
