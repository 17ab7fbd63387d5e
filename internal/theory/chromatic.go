package theory

import "fmt"

// ChromaticLength is the number of pitches in the chromatic index (octaves 1-7)
const ChromaticLength = notesPerOctave * (MaxOctave - MinOctave + 1)

// chromatic is the semitone-ordered table every offset computation indexes into.
// Entry i and entry i+12 share a name one octave apart.
var chromatic [ChromaticLength]Note

func init() {
	for octave := MinOctave; octave <= MaxOctave; octave++ {
		for pc, name := range noteNames {
			chromatic[(octave-MinOctave)*notesPerOctave+pc] = Note{name: name, octave: octave}
		}
	}
}

// ChromaticScale returns a copy of the full chromatic index
func ChromaticScale() []Note {
	notes := make([]Note, ChromaticLength)
	copy(notes, chromatic[:])
	return notes
}

// NoteAt returns the chromatic entry at index i
func NoteAt(i int) (Note, error) {
	if i < 0 || i >= ChromaticLength {
		return Note{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrFretOutOfRange, i, ChromaticLength)
	}
	return chromatic[i], nil
}

// IndexOf returns the chromatic index of the note matching name and octave, or -1
func IndexOf(n Note) int {
	for i, candidate := range chromatic {
		if candidate.name == n.name && candidate.octave == n.octave {
			return i
		}
	}
	return -1
}

// IndexOfName returns the first chromatic index carrying name, or -1.
// A hit always falls within the first octave.
func IndexOfName(name string) int {
	for i, candidate := range chromatic[:notesPerOctave] {
		if candidate.name == name {
			return i
		}
	}
	return -1
}
