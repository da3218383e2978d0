package mailer_test

import (
	"studyshare/pkg/mailer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderNotification(t *testing.T) {
	html, err := mailer.RenderNotification(mailer.NotificationData{
		Name:    "Amal",
		Title:   "Your document was approved",
		Body:    "Maths <2019> is now public.",
		Link:    "https://studyshare.example.com/documents/1",
		SiteURL: "https://studyshare.example.com",
	})
	require.NoError(t, err)
	require.Contains(t, html, "Hi Amal,")
	require.Contains(t, html, "Your document was approved")
	require.Contains(t, html, "Maths &lt;2019&gt; is now public.")
	require.Contains(t, html, `href="https://studyshare.example.com/documents/1"`)

	html, err = mailer.RenderNotification(mailer.NotificationData{Title: "Hello"})
	require.NoError(t, err)
	require.Contains(t, html, "Hi there,")
	require.NotContains(t, html, "Open in StudyShare")
}
