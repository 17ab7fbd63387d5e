package theory

import "fmt"

// Classification describes how a pitch relates to a scale
type Classification int

const (
	NonMember Classification = iota
	Member
	Root
)

// String returns the CSS state name used by renderers
func (c Classification) String() string {
	switch c {
	case Root:
		return "root-note"
	case Member:
		return "active-note"
	default:
		return "hidden-note"
	}
}

// MarshalText lets views carry the state name directly
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Scale is a root pitch class plus the pitch-class names its formula produces.
// A chromatic scale has an empty root, so nothing classifies as Root.
type Scale struct {
	rootNoteName string
	intervals    []int
	scaleNotes   []string
}

// NewScale derives the scale notes by walking the 12-cycle from root.
// A nil intervals slice is the chromatic sentinel; root is ignored in that case.
func NewScale(root string, intervals []int) (*Scale, error) {
	if intervals == nil {
		return &Scale{scaleNotes: NoteNames()}, nil
	}

	rootIndex := IndexOfName(root)
	if rootIndex == -1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRootNote, root)
	}

	s := &Scale{
		rootNoteName: root,
		intervals:    append([]int(nil), intervals...),
		scaleNotes:   make([]string, 0, len(intervals)+1),
	}
	s.scaleNotes = append(s.scaleNotes, chromatic[rootIndex].name)

	index := rootIndex
	for _, interval := range intervals {
		if interval <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
		}
		index = (index + interval) % notesPerOctave
		s.scaleNotes = append(s.scaleNotes, chromatic[index].name)
	}

	return s, nil
}

// Chromatic returns the scale containing all 12 pitch classes
func Chromatic() *Scale {
	s, _ := NewScale("", nil)
	return s
}

// Classify compares by pitch-class name only; octave never matters
func (s *Scale) Classify(n Note) Classification {
	if n.name == s.rootNoteName {
		return Root
	}
	for _, name := range s.scaleNotes {
		if name == n.name {
			return Member
		}
	}
	return NonMember
}

// Degree returns the 1-based position of name in the scale, or 0 if it is not a member
func (s *Scale) Degree(name string) int {
	for i, candidate := range s.scaleNotes {
		if candidate == name {
			return i + 1
		}
	}
	return 0
}

// Notes returns the derived pitch-class names, root first
func (s *Scale) Notes() []string {
	return append([]string(nil), s.scaleNotes...)
}

// RootNoteName returns the root, empty for the chromatic scale
func (s *Scale) RootNoteName() string {
	return s.rootNoteName
}

// Intervals returns the formula, nil for the chromatic scale
func (s *Scale) Intervals() []int {
	if s.intervals == nil {
		return nil
	}
	return append([]int(nil), s.intervals...)
}

// IsChromatic reports whether s was built from the chromatic sentinel
func (s *Scale) IsChromatic() bool {
	return s.intervals == nil
}
