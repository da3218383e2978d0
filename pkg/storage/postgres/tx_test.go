package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"studyshare/pkg/domain"
	"studyshare/pkg/storage"
	"studyshare/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newUser(id domain.UserID) domain.User {
	return domain.User{ID: id, Email: string(id) + "@example.com", Name: "Student", Role: domain.RoleUser}
}

func requireUserExists(t *testing.T, pg *postgres.PgSQL, id domain.UserID, exists bool) {
	t.Helper()
	user, err := pg.UserByID(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, exists, user != nil)
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	require.IsType(t, &sql.Tx{}, inner.DB)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Ping(ctx), storage.ErrNoPool)
	require.NoError(t, pg.Ping(ctx))
}

func TestPgSQL_CommitAndRollbackOutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.UpsertUser(ctx, newUser("user_commit"))
	require.NoError(t, err)
	requireUserExists(t, pg, "user_commit", false)

	require.NoError(t, tx.Commit())
	requireUserExists(t, pg, "user_commit", true)
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.UpsertUser(ctx, newUser("user_rollback"))
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())
	requireUserExists(t, pg, "user_rollback", false)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.UpsertUser(ctx, newUser("user_kept"))

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	requireUserExists(t, pg, "user_kept", true)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.UpsertUser(ctx, newUser("user_dropped"))
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)
	requireUserExists(t, pg, "user_dropped", false)
}

func TestPgSQL_WithTx_RollsBackOnPanic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.UpsertUser(ctx, newUser("user_panic"))
			require.NoError(t, err)

			panic("boom")
		})
	})
	requireUserExists(t, pg, "user_panic", false)
}

func TestPgSQL_StatementTimeout(t *testing.T) {
	opts, terminate := startTestDB(t)
	defer terminate()

	opts.StatementTimeout = 100 * time.Millisecond
	slow, err := postgres.New(t.Context(), opts)
	require.NoError(t, err)
	defer slow.Close() //nolint: errcheck

	_, err = slow.DB.ExecContext(t.Context(), `SELECT pg_sleep(1)`)
	require.ErrorContains(t, err, "statement timeout")
}

func TestOptions_DSN(t *testing.T) {
	dsn := postgres.Options{
		Username:        "study",
		Password:        "p@ss word",
		Host:            "db",
		Port:            5432,
		Database:        "studyshare",
		SslMode:         "disable",
		ApplicationName: "studyshare",
	}.DSN()

	require.Equal(t,
		"postgres://study:p%40ss%20word@db:5432/studyshare?application_name=studyshare&sslmode=disable", dsn)
}
