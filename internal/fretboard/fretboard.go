package fretboard

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
)

// DefaultFretCount is the number of frets above the open string
const DefaultFretCount = 24

const fretsPerOctave = 12

var errScaleRequired = errors.New("scale is required")

// FretClass is the structural role of a fret column
type FretClass int

const (
	FretStandard FretClass = iota
	FretOpen
	FretOctaveMarker
)

// String returns the CSS class name used by renderers
func (c FretClass) String() string {
	switch c {
	case FretOpen:
		return "zero"
	case FretOctaveMarker:
		return "twelves"
	default:
		return "default"
	}
}

// MarshalText encodes the class as its CSS name
func (c FretClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func classForColumn(j int) FretClass {
	switch {
	case j == 0:
		return FretOpen
	case j%fretsPerOctave == 0:
		return FretOctaveMarker
	default:
		return FretStandard
	}
}

// Fret is one cell of the grid. Note and class are fixed when the board is built;
// the state changes whenever the owning board is given a new scale.
type Fret struct {
	note  theory.Note
	class FretClass
	state theory.Classification
}

// Note is the pitch sounded at this fret
func (f *Fret) Note() theory.Note {
	return f.note
}

// Class marks the open string and octave frets
func (f *Fret) Class() FretClass {
	return f.class
}

// State is the note's classification under the board's current scale
func (f *Fret) State() theory.Classification {
	return f.state
}

// GuitarString is one row of the grid; Frets[0] is the open string
type GuitarString struct {
	ID    int
	Frets []Fret
}

// Fretboard is the annotated grid for one tuning. It is not safe for concurrent use.
type Fretboard struct {
	Strings   []GuitarString
	fretCount int
	scale     *theory.Scale
}

// New builds a board with one string per starting note. Fret j on a string is the
// chromatic entry j semitones above the open note. Nothing is built if any string
// would run past the top of the chromatic index.
func New(startingNotes []theory.Note, scale *theory.Scale, fretCount int) (*Fretboard, error) {
	if scale == nil {
		return nil, errScaleRequired
	}
	if fretCount < 0 {
		return nil, fmt.Errorf("%w: negative fret count %d", theory.ErrFretOutOfRange, fretCount)
	}

	starts := make([]int, len(startingNotes))
	for i, note := range startingNotes {
		k0 := theory.IndexOf(note)
		if k0 == -1 {
			return nil, fmt.Errorf("%w: %s", theory.ErrInvalidNoteName, note.ID())
		}
		if k0+fretCount >= theory.ChromaticLength {
			return nil, fmt.Errorf("%w: string %d (%s) supports at most %d frets, got %d",
				theory.ErrFretOutOfRange, i, note.ID(), theory.ChromaticLength-1-k0, fretCount)
		}
		starts[i] = k0
	}

	fb := &Fretboard{
		Strings:   make([]GuitarString, 0, len(startingNotes)),
		fretCount: fretCount,
		scale:     scale,
	}
	for i, k0 := range starts {
		frets := make([]Fret, fretCount+1)
		for j := range frets {
			note, err := theory.NoteAt(k0 + j)
			if err != nil {
				return nil, err
			}
			frets[j] = Fret{
				note:  note,
				class: classForColumn(j),
				state: scale.Classify(note),
			}
		}
		fb.Strings = append(fb.Strings, GuitarString{ID: i, Frets: frets})
	}

	return fb, nil
}

// UpdateFretboard reclassifies every cell against scale in place. Notes, fret classes
// and the grid allocation are untouched, so pointers into Strings stay valid.
func (fb *Fretboard) UpdateFretboard(scale *theory.Scale) {
	if scale == nil {
		return
	}
	for i := range fb.Strings {
		frets := fb.Strings[i].Frets
		for j := range frets {
			frets[j].state = scale.Classify(frets[j].note)
		}
	}
	fb.scale = scale
}

// Scale returns the scale the board is currently classified against
func (fb *Fretboard) Scale() *theory.Scale {
	return fb.scale
}

// FretCount returns the number of frets above the open string
func (fb *Fretboard) FretCount() int {
	return fb.fretCount
}

// Tuning returns the open note of each string
func (fb *Fretboard) Tuning() []theory.Note {
	notes := make([]theory.Note, len(fb.Strings))
	for i, s := range fb.Strings {
		notes[i] = s.Frets[0].note
	}
	return notes
}
