package r2_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"studyshare/pkg/objectstore/r2"
	"studyshare/pkg/serrors"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "documents"
)

// setupStore starts a MinIO container, which speaks the same S3 API as R2.
func setupStore(t *testing.T) (*r2.Store, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     testAccessKey,
				"MINIO_ROOT_PASSWORD": testSecretKey,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	store, err := r2.New(r2.Options{
		Endpoint:        fmt.Sprintf("%s:%d", host, port.Int()),
		AccessKeyID:     testAccessKey,
		SecretAccessKey: testSecretKey,
		Bucket:          testBucket,
		Insecure:        true,
	})
	require.NoError(t, err)
	require.NoError(t, store.EnsureBucket(ctx))

	return store, func() {
		_ = container.Terminate(ctx)
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := t.Context()

	data := []byte("%PDF-1.7 test")
	require.NoError(t, store.Put(ctx, "documents/a.pdf", bytes.NewReader(data), int64(len(data)), "application/pdf"))

	obj, err := store.Get(ctx, "documents/a.pdf")
	require.NoError(t, err)
	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	require.Equal(t, data, got)
	require.Equal(t, int64(len(data)), obj.Size)
	require.Equal(t, "application/pdf", obj.ContentType)

	require.NoError(t, store.Delete(ctx, "documents/a.pdf"))
	_, err = store.Get(ctx, "documents/a.pdf")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, "documents/a.pdf"))
}

func TestStore_PresignGet(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := t.Context()

	data := []byte("hello")
	require.NoError(t, store.Put(ctx, "documents/b.pdf", bytes.NewReader(data), int64(len(data)), "application/pdf"))

	link, err := store.PresignGet(ctx, "documents/b.pdf", "Maths 2020.pdf", time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Contains(t, u.Query().Get("response-content-disposition"), "attachment")

	resp, err := http.Get(link) //nolint: noctx
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, data, body)
}
