package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civitas/internal/domain"
)

func TestTemplateRenderer_RenderJoinConfirmation(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.JoinConfirmationEmailData{
		Email:      "bob@x.com",
		EventTitle: "Park <Cleanup>",
		EventType:  "Volunteering",
		Location:   "Central Park",
		Date:       time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		JoinedAt:   time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	subject, html, text, err := r.Render("join_confirmation", data)
	require.NoError(t, err)

	assert.Equal(t, "You're in: Park <Cleanup>", subject)
	assert.Contains(t, html, "Park &lt;Cleanup&gt;")
	assert.Contains(t, html, "Central Park")
	assert.Contains(t, text, `You joined "Park <Cleanup>" (Volunteering).`)
	assert.Contains(t, text, "Sun, 01 Jun 2025 09:30 UTC")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("does_not_exist", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
