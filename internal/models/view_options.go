package models

// View options control how many frets a saved fretboard shows
const (
	ViewTwentyFourFrets = "24 frets"
	ViewTwelveFrets     = "12 frets"
)

// ViewOptions lists the view options in display order; the first is the default
var ViewOptions = []string{ViewTwentyFourFrets, ViewTwelveFrets}

var viewOptionFrets = map[string]int{
	ViewTwentyFourFrets: 24,
	ViewTwelveFrets:     12,
}

// DefaultViewOption is used when a request does not name one
func DefaultViewOption() string {
	return ViewOptions[0]
}

// IsViewOption reports whether option is a known view option
func IsViewOption(option string) bool {
	_, ok := viewOptionFrets[option]
	return ok
}

// FretCountFor returns the frets above the open string shown by option, false if option is unknown
func FretCountFor(option string) (int, bool) {
	n, ok := viewOptionFrets[option]
	return n, ok
}

// Label modes pick the text drawn on each fret. They are a render parameter, not a saved setting.
const (
	LabelNotes           = "Notes"
	LabelNotesWithOctave = "Notes with octave"
	LabelScaleDegrees    = "Scale degrees"
	LabelDots            = "Dots"
)

// LabelModes lists the label modes; the first is the default
var LabelModes = []string{LabelNotes, LabelNotesWithOctave, LabelScaleDegrees, LabelDots}

func DefaultLabelMode() string {
	return LabelModes[0]
}

func IsLabelMode(mode string) bool {
	for _, m := range LabelModes {
		if m == mode {
			return true
		}
	}
	return false
}
