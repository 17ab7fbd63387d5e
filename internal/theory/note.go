package theory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinOctave and MaxOctave bound the supported pitch range
	MinOctave = 1
	MaxOctave = 7

	notesPerOctave = 12
)

// noteNames lists the 12 canonical pitch-class spellings in semitone order.
// Sharps only; flats and E#/B# are never accepted.
var noteNames = [notesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteStringPattern = regexp.MustCompile(`^([A-G]#?)(\d)$`)

// Note is an absolute pitch: a pitch-class name bound to an octave.
// The zero value is not a valid note; build notes with NewNote or ParseNote.
type Note struct {
	name   string
	octave int
}

// NewNote validates and normalizes a note. The name is uppercased before it is
// checked, and the name is checked before the octave.
func NewNote(name string, octave int) (Note, error) {
	normalized := strings.ToUpper(name)
	if pitchClassOf(normalized) < 0 {
		return Note{}, fmt.Errorf("%w: %s", ErrInvalidNoteName, name)
	}

	if octave < MinOctave || octave > MaxOctave {
		return Note{}, fmt.Errorf("%w: %d", ErrInvalidOctave, octave)
	}

	return Note{name: normalized, octave: octave}, nil
}

// ParseNote parses the compact form used in tuning descriptors, e.g. "C#4"
func ParseNote(s string) (Note, error) {
	match := noteStringPattern.FindStringSubmatch(s)
	if match == nil {
		return Note{}, fmt.Errorf("%w: %s", ErrInvalidNoteName, s)
	}

	octave, err := strconv.Atoi(match[2])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %s", ErrInvalidNoteName, s)
	}

	return NewNote(match[1], octave)
}

// Name returns the normalized pitch-class name, e.g. "D#"
func (n Note) Name() string {
	return n.name
}

// Octave returns the octave number
func (n Note) Octave() int {
	return n.octave
}

// ID returns the name followed by the octave, e.g. "F#3"
func (n Note) ID() string {
	return n.name + strconv.Itoa(n.octave)
}

// PitchClass returns the semitone index of the name within an octave (C = 0)
func (n Note) PitchClass() int {
	return pitchClassOf(n.name)
}

// IsZero reports whether n is the zero Note
func (n Note) IsZero() bool {
	return n.name == ""
}

func (n Note) String() string {
	return n.ID()
}

// MarshalText encodes the note as its ID so JSON and YAML carry "E4" rather than a struct
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.ID()), nil
}

// UnmarshalText decodes a note from its ID
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// NoteNames returns the 12 canonical pitch-class names in semitone order
func NoteNames() []string {
	names := make([]string, notesPerOctave)
	copy(names, noteNames[:])
	return names
}

// IsNoteName reports whether name is one of the canonical spellings (exact match)
func IsNoteName(name string) bool {
	return pitchClassOf(name) >= 0
}

func pitchClassOf(name string) int {
	for i, candidate := range noteNames {
		if candidate == name {
			return i
		}
	}
	return -1
}
