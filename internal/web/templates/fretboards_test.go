package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFretboardsPage(t *testing.T) {
	svc := services.NewFretboardService(3, 2)
	view, err := svc.Render(context.Background(), services.RenderRequest{
		Tuning:   "E2",
		RootNote: "E",
		Scale:    "Major Scale",
	})
	require.NoError(t, err)
	view.Title = "<script>alert(1)</script>"

	var b strings.Builder
	require.NoError(t, FretboardsPage("anonymous", []*services.FretboardView{view}).Render(context.Background(), &b))
	html := b.String()

	assert.Contains(t, html, "Fretboards of anonymous")
	assert.Contains(t, html, "<style>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `class="zero root-note"`)
	assert.Contains(t, html, `class="default hidden-note"`)
}

func TestFretboardsPage_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FretboardsPage("someone", nil).Render(context.Background(), &b))
	assert.Contains(t, b.String(), "No fretboards saved yet.")
}
