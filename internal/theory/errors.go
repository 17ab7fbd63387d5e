package theory

import "errors"

// Validation errors returned by the theory and fretboard packages.
// Callers match them with errors.Is; the wrapped message carries the offending input.
var (
	ErrInvalidNoteName = errors.New("invalid note name")
	ErrInvalidOctave   = errors.New("invalid octave number")
	ErrInvalidRootNote = errors.New("invalid root note")
	ErrInvalidInterval = errors.New("invalid scale interval")
	ErrUnknownScale    = errors.New("unknown scale")
	ErrFretOutOfRange  = errors.New("fret out of range")
)

// IsValidationError reports whether err is one of the theory validation errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidNoteName) ||
		errors.Is(err, ErrInvalidOctave) ||
		errors.Is(err, ErrInvalidRootNote) ||
		errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrUnknownScale) ||
		errors.Is(err, ErrFretOutOfRange)
}
