package templates

import (
	"strings"

	"github.com/Conceptual-Machines/fretboard-api/internal/services"
	"github.com/Conceptual-Machines/fretboard-api/pkg/embedded"
)

// rootLabel shows "-" for scales without a root, such as the chromatic scale
func rootLabel(view *services.FretboardView) string {
	if view.RootNote == "" {
		return "-"
	}
	return view.RootNote
}

func scaleNotes(view *services.FretboardView) string {
	return strings.Join(view.ScaleNotes, " ")
}

func stylesheet() string {
	return "<style>" + embedded.FretboardCSS + "</style>"
}
