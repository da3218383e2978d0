package controller_test

import (
	"net/http"
	"net/http/httptest"
	"studyshare/pkg/controller"
	"studyshare/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		value      string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", "X-Forwarded-For", "1.2.3.4, 5.6.7.8", "", "1.2.3.4"},
		{"real ip", "X-Real-IP", "9.8.7.6", "", "9.8.7.6"},
		{"remote addr", "", "", "10.0.0.1:12345", "10.0.0.1"},
		{"unparsable remote addr", "", "", "not-an-addr", "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// serveLogged runs handler behind WithLogger with an observed logger.
func serveLogged(t *testing.T, handler http.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, []observer.LoggedEntry) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))

	rec := httptest.NewRecorder()
	controller.WithLogger(handler).ServeHTTP(rec, req)

	return rec, logs.FilterMessage("Access log").All()
}

func TestWithLogger_RequestID(t *testing.T) {
	echo := func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(controller.RequestIDKey).(string)
		w.Header().Set("X-Echo", id)
		w.WriteHeader(http.StatusCreated)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec, entries := serveLogged(t, echo, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Echo"))
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
	require.Len(t, entries, 1)
	require.Equal(t, "abc-123", entries[0].ContextMap()["RequestID"])

	rec, _ = serveLogged(t, echo, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get("X-Echo"))
	require.Equal(t, rec.Header().Get("X-Echo"), rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_AccessLog(t *testing.T) {
	hello := func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hello")) }

	rec, entries := serveLogged(t, hello, httptest.NewRequest(http.MethodGet, "/v1/subjects?x=1", nil))
	require.Equal(t, "hello", rec.Body.String())
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusOK), fields["status_code"])
	require.Equal(t, int64(5), fields["bytes"])
	require.Equal(t, "/v1/subjects?x=1", fields["url"])
	require.Equal(t, http.MethodGet, fields["method"])
}

func TestWithLogger_Levels(t *testing.T) {
	tests := []struct {
		path   string
		status int
		want   zapcore.Level
	}{
		{"/v1/me", http.StatusNotFound, zapcore.InfoLevel},
		{"/v1/me", http.StatusBadGateway, zapcore.WarnLevel},
		{"/healthz", http.StatusOK, zapcore.DebugLevel},
		{"/metrics", http.StatusOK, zapcore.DebugLevel},
		{"/healthz", http.StatusServiceUnavailable, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, entries := serveLogged(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Len(t, entries, 1)
			require.Equal(t, tt.want, entries[0].Level)
		})
	}
}
