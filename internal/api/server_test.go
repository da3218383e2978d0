package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"studyshare/internal/api"
	"studyshare/internal/api/handler/v1handler"
	"studyshare/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T, health func(context.Context) error) http.Handler {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	srv, err := api.NewServer(context.Background(), api.Deps{Health: health}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: string(pubPEM)},
		V1:                v1handler.Options{RequestTimeout: time.Second},
		Addr:              ":0",
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"*"},
	})
	require.NoError(t, err)

	return srv.Handler
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestNewServer_Routes(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		path   string
		status int
	}{
		{path: "/healthz", status: http.StatusOK},
		{path: "/metrics", status: http.StatusOK},
		{path: "/specs/v1.yaml", status: http.StatusOK},
		{path: "/v1/subjects", status: http.StatusOK},
		{path: "/v1/me", status: http.StatusUnauthorized},
		{path: "/debug/pprof/", status: http.StatusUnauthorized},
		{path: "/nope", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, h, tt.path)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestNewServer_SpecsDocument(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/specs/v1.yaml")
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/v1/documents/{id}/download")
}

func TestNewServer_HealthFailing(t *testing.T) {
	h := newTestServer(t, func(context.Context) error { return errors.New("db down") })

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}
