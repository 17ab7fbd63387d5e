package metrics

import (
	"context"
	"time"
)

// Render describes one fretboard render
type Render struct {
	Tuning   string
	Scale    string
	Strings  int
	Frets    int // Frets above the open string
	CacheHit bool
	Duration time.Duration
}

// RenderRecorder receives render events; SentryMetrics and Client both implement it
type RenderRecorder interface {
	RecordFretboardRender(ctx context.Context, render Render)
}
