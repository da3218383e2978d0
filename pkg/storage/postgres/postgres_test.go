package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	root "studyshare"
	"studyshare/pkg/domain"
	"studyshare/pkg/storage/postgres"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// startTestDB starts a migrated database and returns the options to
// connect to it.
func startTestDB(t *testing.T) (postgres.Options, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)
	terminate := func() { _ = pgContainer.Container.Terminate(ctx) }

	opts := postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ApplicationName:    "studyshare-test",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	}

	db, err := sql.Open("pgx", opts.DSN())
	if err == nil {
		err = runMigrations(db)
		_ = db.Close()
	}
	if err != nil {
		terminate()
	}
	require.NoError(t, err)

	return opts, terminate
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()

	opts, terminate := startTestDB(t)
	pgSQL, err := postgres.New(t.Context(), opts)
	if err != nil {
		terminate()
	}
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		terminate()
	}
}

// seedUser inserts a user with the given id and returns it.
func seedUser(t *testing.T, pg *postgres.PgSQL, id domain.UserID, role domain.Role) *domain.User {
	t.Helper()
	u, err := pg.UpsertUser(t.Context(), domain.User{
		ID:    id,
		Email: string(id) + "@example.com",
		Name:  "User " + string(id),
		Role:  role,
	})
	require.NoError(t, err)

	return u
}

// seedDocument inserts a document uploaded by uploader in the given status.
func seedDocument(t *testing.T,
	pg *postgres.PgSQL,
	uploader domain.UserID,
	title string,
	status domain.DocumentStatus) *domain.Document {
	t.Helper()
	doc, err := pg.StoreDocument(t.Context(), domain.Document{
		UploaderID:  uploader,
		Title:       title,
		Subject:     domain.SubjectMathematics,
		Medium:      domain.MediumEnglish,
		DocType:     domain.DocTypePastPaper,
		Year:        2022,
		FileKey:     "documents/" + title + ".pdf",
		FileName:    title + ".pdf",
		ContentType: "application/pdf",
		FileSize:    1024,
		PageCount:   3,
		Status:      status,
	})
	require.NoError(t, err)

	return doc
}
