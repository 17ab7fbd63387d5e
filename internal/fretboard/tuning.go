package fretboard

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
)

// Preset is a named tuning descriptor
type Preset struct {
	Name   string `json:"name" yaml:"name"`
	Tuning string `json:"tuning" yaml:"tuning"`
}

// Tuning presets, highest string first to match the display order
var presets = []Preset{
	{Name: "Standard E", Tuning: "E4,B3,G3,D3,A2,E2"},
	{Name: "Drop D", Tuning: "E4,B3,G3,D3,A2,D2"},
	{Name: "Standard Bass", Tuning: "G2,D2,A1,E1"},
	{Name: "Seven String", Tuning: "E4,B3,G3,D3,A2,E2,B1"},
}

// Presets returns the built-in tunings
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// ParseTuning parses a comma-separated descriptor such as "E4,B3,G3,D3,A2,E2".
// Items are trimmed; an empty descriptor or item is an invalid note name.
func ParseTuning(descriptor string) ([]theory.Note, error) {
	if strings.TrimSpace(descriptor) == "" {
		return nil, fmt.Errorf("%w: empty tuning", theory.ErrInvalidNoteName)
	}

	parts := strings.Split(descriptor, ",")
	notes := make([]theory.Note, 0, len(parts))
	for _, part := range parts {
		note, err := theory.ParseNote(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}

// FormatTuning is the inverse of ParseTuning
func FormatTuning(notes []theory.Note) string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID()
	}
	return strings.Join(ids, ",")
}
