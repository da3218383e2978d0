package moderation_test

import (
	"context"
	"errors"
	"studyshare/internal/moderation"
	"studyshare/pkg/domain"
	"studyshare/pkg/metrics"
	"studyshare/pkg/pagination"
	"studyshare/pkg/serrors"
	"studyshare/pkg/storage"
	"testing"
	"time"

	mocknotifications "studyshare/internal/notifications/mock"
	mockstorage "studyshare/pkg/storage/mock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const threshold = 3

var admin = &domain.User{ID: "admin_1", Role: domain.RoleAdmin} //nolint: gochecknoglobals

type testModeration struct {
	ctrl          *gomock.Controller
	storage       *mockstorage.MockStorage
	notifications *mocknotifications.MockNotifications
	svc           moderation.Moderation
}

func newTestModeration(t *testing.T) *testModeration {
	t.Helper()

	ctrl := gomock.NewController(t)
	tm := &testModeration{
		ctrl:          ctrl,
		storage:       mockstorage.NewMockStorage(ctrl),
		notifications: mocknotifications.NewMockNotifications(ctrl),
	}
	tm.svc = moderation.New(tm.storage, tm.notifications, metrics.Noop(),
		moderation.Options{DownvoteThreshold: threshold})

	return tm
}

func (tm *testModeration) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	tm.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(tm.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestAllowed(t *testing.T) {
	// sections in display order: pending, approved, downvoted, flagged
	want := map[moderation.Action][]domain.Section{
		moderation.ActionApprove:      {domain.SectionPending},
		moderation.ActionReject:       {domain.SectionPending, domain.SectionDownvoted, domain.SectionFlagged},
		moderation.ActionDismissFlags: {domain.SectionFlagged},
		moderation.ActionResetVotes:   {domain.SectionDownvoted},
		moderation.ActionUnpublish:    {domain.SectionApproved, domain.SectionDownvoted, domain.SectionFlagged},
		moderation.ActionDelete:       domain.Sections,
	}

	got := make(map[moderation.Action][]domain.Section)
	for action := range want {
		for _, s := range domain.Sections {
			if moderation.Allowed(action, s) {
				got[action] = append(got[action], s)
			}
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("allowed sections mismatch (-want +got):\n%s", diff)
	}

	_, ok := moderation.ParseAction("ban_user")
	require.False(t, ok)
}

func TestDashboard(t *testing.T) {
	tm := newTestModeration(t)

	for i, s := range domain.Sections {
		tm.storage.EXPECT().SectionCount(gomock.Any(), s, threshold).Return(i+1, nil)
	}
	tm.storage.EXPECT().SectionDocuments(gomock.Any(), domain.SectionFlagged, threshold, pagination.Page{Limit: 2}).
		Return([]domain.Document{{Title: "a"}, {Title: "b"}, {Title: "c"}}, nil)

	d, err := tm.svc.Dashboard(context.Background(), admin, domain.SectionFlagged, "", 2)
	require.NoError(t, err)
	require.Equal(t, domain.SectionFlagged, d.Section)
	require.Len(t, d.Items, 2)
	require.Equal(t, pagination.Encode(2), d.Next)
	require.Equal(t, map[domain.Section]int{
		domain.SectionPending:   1,
		domain.SectionApproved:  2,
		domain.SectionDownvoted: 3,
		domain.SectionFlagged:   4,
	}, d.Counts)
}

func TestDashboard_Errors(t *testing.T) {
	t.Run("not admin", func(t *testing.T) {
		tm := newTestModeration(t)
		_, err := tm.svc.Dashboard(context.Background(), &domain.User{ID: "u"}, domain.SectionPending, "", 10)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("unknown section", func(t *testing.T) {
		tm := newTestModeration(t)
		_, err := tm.svc.Dashboard(context.Background(), admin, "rejected", "", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("storage failure", func(t *testing.T) {
		tm := newTestModeration(t)
		tm.storage.EXPECT().SectionCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("db")).AnyTimes()
		tm.storage.EXPECT().SectionDocuments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).AnyTimes()

		_, err := tm.svc.Dashboard(context.Background(), admin, "", "", 10)
		require.Error(t, err)
	})
}

func approvedDoc(id domain.DocumentID) *domain.Document {
	return &domain.Document{ID: id, UploaderID: "owner", Title: "Maths", Status: domain.DocumentStatusApproved}
}

func TestAct_Approve(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(&domain.Document{
			ID: id, UploaderID: "owner", Title: "Maths", Status: domain.DocumentStatusPending,
		}, nil)
		tx.EXPECT().UpdateDocument(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DocumentID, u storage.DocumentUpdates) (*domain.Document, error) {
				require.Equal(t, domain.DocumentStatusApproved, *u.Status)
				require.Equal(t, admin.ID, *u.ReviewedBy)
				require.Empty(t, *u.RejectionReason)

				return approvedDoc(id), nil
			})
		tm.notifications.EXPECT().Notify(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, n domain.Notification) (*domain.Notification, error) {
				require.Equal(t, domain.UserID("owner"), n.UserID)
				require.Equal(t, domain.NotificationDocumentApproved, n.Kind)
				require.Equal(t, id, *n.DocumentID)

				return &n, nil
			})
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionApprove, "")
	require.NoError(t, err)
	require.Equal(t, domain.DocumentStatusApproved, doc.Status)
}

func TestAct_RejectFlagged(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		flagged := approvedDoc(id)
		flagged.FlagCount = 2
		tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(flagged, nil)
		tx.EXPECT().ResolveFlags(gomock.Any(), id).Return(int64(2), nil)
		tx.EXPECT().UpdateDocument(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DocumentID, u storage.DocumentUpdates) (*domain.Document, error) {
				require.Equal(t, domain.DocumentStatusRejected, *u.Status)
				require.Equal(t, "copyrighted book", *u.RejectionReason)

				return &domain.Document{ID: id, UploaderID: "owner", Status: domain.DocumentStatusRejected}, nil
			})
		tm.notifications.EXPECT().Notify(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, n domain.Notification) (*domain.Notification, error) {
				require.Equal(t, domain.NotificationDocumentRejected, n.Kind)
				require.Contains(t, n.Body, "copyrighted book")

				return &n, nil
			})
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionReject, " copyrighted book ")
	require.NoError(t, err)
	require.Equal(t, domain.DocumentStatusRejected, doc.Status)
}

func TestAct_RejectNeedsReason(t *testing.T) {
	tm := newTestModeration(t)

	_, err := tm.svc.Act(context.Background(), admin, domain.DocumentID(uuid.New()), moderation.ActionReject, "  ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAct_ResetVotes(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		downvoted := approvedDoc(id)
		downvoted.Downvotes = threshold
		tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(downvoted, nil)
		tx.EXPECT().ResetVotes(gomock.Any(), id).Return(nil)
		tx.EXPECT().DocumentByID(gomock.Any(), id, domain.UserID("")).Return(approvedDoc(id), nil)
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionResetVotes, "")
	require.NoError(t, err)
	require.Zero(t, doc.Downvotes)
}

func TestAct_DismissFlags(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		flagged := approvedDoc(id)
		flagged.FlagCount = 3
		gomock.InOrder(
			tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(flagged, nil),
			tx.EXPECT().ResolveFlags(gomock.Any(), id).Return(int64(3), nil),
			tx.EXPECT().DocumentByID(gomock.Any(), id, domain.UserID("")).Return(approvedDoc(id), nil),
		)
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionDismissFlags, "")
	require.NoError(t, err)
	require.Equal(t, domain.DocumentStatusApproved, doc.Status)
	require.Zero(t, doc.FlagCount)
}

func TestAct_UnpublishResolvesFlags(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		flagged := approvedDoc(id)
		flagged.FlagCount = 1
		gomock.InOrder(
			tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(flagged, nil),
			tx.EXPECT().ResolveFlags(gomock.Any(), id).Return(int64(1), nil),
			tx.EXPECT().UpdateDocument(gomock.Any(), id, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.DocumentID, u storage.DocumentUpdates) (*domain.Document, error) {
					require.Equal(t, domain.DocumentStatusPending, *u.Status)
					require.Nil(t, u.RejectionReason)

					return &domain.Document{ID: id, UploaderID: "owner", Status: domain.DocumentStatusPending}, nil
				}),
		)
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionUnpublish, "")
	require.NoError(t, err)
	require.Equal(t, domain.DocumentStatusPending, doc.Status)
	require.Zero(t, doc.FlagCount)
}

func TestAct_Delete(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		downvoted := approvedDoc(id)
		downvoted.Downvotes = threshold + 1
		tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(downvoted, nil)
		tx.EXPECT().SoftDeleteDocument(gomock.Any(), id).DoAndReturn(
			func(_ context.Context, _ domain.DocumentID) (*domain.Document, error) {
				deleted := approvedDoc(id)
				deleted.DeletedAt = time.Now()

				return deleted, nil
			})
	})

	doc, err := tm.svc.Act(context.Background(), admin, id, moderation.ActionDelete, "")
	require.NoError(t, err)
	require.False(t, doc.DeletedAt.IsZero())
	_, ok := domain.SectionOf(doc, threshold)
	require.False(t, ok)
}

func TestAct_WrongSection(t *testing.T) {
	tests := []struct {
		name   string
		doc    func(id domain.DocumentID) *domain.Document
		action moderation.Action
	}{
		{name: "approve approved", doc: approvedDoc, action: moderation.ActionApprove},
		{name: "dismiss without flags", doc: approvedDoc, action: moderation.ActionDismissFlags},
		{
			name: "reset votes on flagged",
			doc: func(id domain.DocumentID) *domain.Document {
				d := approvedDoc(id)
				d.FlagCount, d.Downvotes = 1, threshold

				return d
			},
			action: moderation.ActionResetVotes,
		},
		{
			name: "rejected document",
			doc: func(id domain.DocumentID) *domain.Document {
				d := approvedDoc(id)
				d.Status = domain.DocumentStatusRejected

				return d
			},
			action: moderation.ActionDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestModeration(t)
			id := domain.DocumentID(uuid.New())
			tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().LockDocumentByID(gomock.Any(), id).Return(tt.doc(id), nil)
			})

			_, err := tm.svc.Act(context.Background(), admin, id, tt.action, "")
			require.ErrorIs(t, err, serrors.ErrConflict)
		})
	}
}

func TestAct_NotFound(t *testing.T) {
	tm := newTestModeration(t)
	tm.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDocumentByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	_, err := tm.svc.Act(context.Background(), admin, domain.DocumentID(uuid.New()), moderation.ActionDelete, "")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestFlags(t *testing.T) {
	tm := newTestModeration(t)
	id := domain.DocumentID(uuid.New())

	tm.storage.EXPECT().OpenFlags(gomock.Any(), id).Return([]domain.Flag{{Reason: "spam"}}, nil)

	flags, err := tm.svc.Flags(context.Background(), admin, id)
	require.NoError(t, err)
	require.Len(t, flags, 1)

	_, err = tm.svc.Flags(context.Background(), nil, id)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}
