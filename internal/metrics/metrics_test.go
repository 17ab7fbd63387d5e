package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// no-ops when disabled
	client.RecordAPIRequest("/health", 200, time.Millisecond)
	client.RecordFretboardRender(context.Background(), Render{Scale: "Major Scale"})
}

func TestRecorders(t *testing.T) {
	var recorders []RenderRecorder
	recorders = append(recorders, NewSentryMetrics(), &Client{})

	for _, r := range recorders {
		r.RecordFretboardRender(context.Background(), Render{
			Tuning:   "E4,B3,G3,D3,A2,E2",
			Scale:    "Minor Scale",
			Strings:  6,
			Frets:    24,
			Duration: time.Millisecond,
		})
	}
}

func TestBoolToString(t *testing.T) {
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
}
