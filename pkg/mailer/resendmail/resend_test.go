package resendmail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"studyshare/pkg/mailer"
	"studyshare/pkg/mailer/resendmail"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "StudyShare <noreply@example.com>", body["from"])
		require.Equal(t, []any{"student@example.com"}, body["to"])
		require.Equal(t, "Your document was approved", body["subject"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	t.Cleanup(srv.Close)

	s, err := resendmail.New(srv.Client(), resendmail.Options{
		APIKey:  "re_test",
		From:    "StudyShare <noreply@example.com>",
		BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)

	id, err := s.Send(context.Background(), mailer.Message{
		To:      "student@example.com",
		Subject: "Your document was approved",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	require.Equal(t, "email_123", id)
}

func TestSend_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	t.Cleanup(srv.Close)

	s, err := resendmail.New(srv.Client(), resendmail.Options{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = s.Send(context.Background(), mailer.Message{To: "x@example.com"})
	require.Error(t, err)
}
