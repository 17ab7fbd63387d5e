package fretboard

import (
	"testing"

	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notes(t *testing.T, ids ...string) []theory.Note {
	t.Helper()
	out := make([]theory.Note, len(ids))
	for i, id := range ids {
		n, err := theory.ParseNote(id)
		require.NoError(t, err)
		out[i] = n
	}
	return out
}

func scale(t *testing.T, root, formula string) *theory.Scale {
	t.Helper()
	s, err := theory.ScaleFromFormula(root, formula)
	require.NoError(t, err)
	return s
}

func TestNew_FretClasses(t *testing.T) {
	fb, err := New(notes(t, "E4", "B3", "G3"), theory.Chromatic(), DefaultFretCount)
	require.NoError(t, err)
	require.Len(t, fb.Strings, 3)

	for _, s := range fb.Strings {
		assert.Equal(t, FretOpen, s.Frets[0].Class())
		assert.Equal(t, FretOctaveMarker, s.Frets[12].Class())
		assert.Equal(t, FretOctaveMarker, s.Frets[24].Class())
		for j := 1; j < 24; j++ {
			if j == 12 {
				continue
			}
			assert.Equal(t, FretStandard, s.Frets[j].Class(), "fret %d", j)
		}
	}
}

func TestNew_FretCounts(t *testing.T) {
	fb, err := New(notes(t, "E4", "B3", "G3"), theory.Chromatic(), 5)
	require.NoError(t, err)
	for _, s := range fb.Strings {
		assert.Len(t, s.Frets, 6)
	}

	fb, err = New(notes(t, "E4", "B3", "G3"), theory.Chromatic(), DefaultFretCount)
	require.NoError(t, err)
	for _, s := range fb.Strings {
		assert.Len(t, s.Frets, 25)
	}
	assert.Equal(t, DefaultFretCount, fb.FretCount())

	fb, err = New(notes(t, "A2"), theory.Chromatic(), 0)
	require.NoError(t, err)
	require.Len(t, fb.Strings[0].Frets, 1)
	assert.Equal(t, FretOpen, fb.Strings[0].Frets[0].Class())
}

func TestNew_Pitches(t *testing.T) {
	fb, err := New(notes(t, "E4", "B3", "G3"), theory.Chromatic(), DefaultFretCount)
	require.NoError(t, err)

	assert.Equal(t, "E4", fb.Strings[0].Frets[0].Note().ID())
	assert.Equal(t, "D5", fb.Strings[0].Frets[10].Note().ID())
	assert.Equal(t, "E6", fb.Strings[0].Frets[24].Note().ID())
	assert.Equal(t, "G3", fb.Strings[2].Frets[0].Note().ID())
	assert.Equal(t, "F4", fb.Strings[2].Frets[10].Note().ID())
	assert.Equal(t, "G5", fb.Strings[2].Frets[24].Note().ID())

	for i, s := range fb.Strings {
		assert.Equal(t, i, s.ID)
		open := theory.IndexOf(s.Frets[0].Note())
		for j, f := range s.Frets {
			assert.Equal(t, open+j, theory.IndexOf(f.Note()), "string %d fret %d", i, j)
		}
	}

	for _, f := range fb.Strings[1].Frets {
		assert.Equal(t, theory.Member, f.State())
	}
}

func TestNew_EMinor(t *testing.T) {
	fb, err := New(notes(t, "E4"), scale(t, "E", theory.MinorScaleName), 12)
	require.NoError(t, err)
	frets := fb.Strings[0].Frets

	expected := []struct {
		id    string
		state theory.Classification
	}{
		{"E4", theory.Root},
		{"F4", theory.NonMember},
		{"F#4", theory.Member},
		{"G4", theory.Member},
		{"G#4", theory.NonMember},
		{"A4", theory.Member},
		{"A#4", theory.NonMember},
		{"B4", theory.Member},
		{"C5", theory.Member},
		{"C#5", theory.NonMember},
		{"D5", theory.Member},
		{"D#5", theory.NonMember},
		{"E5", theory.Root},
	}
	require.Len(t, frets, len(expected))
	for j, e := range expected {
		assert.Equal(t, e.id, frets[j].Note().ID(), "fret %d", j)
		assert.Equal(t, e.state, frets[j].State(), "fret %d", j)
	}
	assert.Equal(t, FretOctaveMarker, frets[12].Class())
}

func TestNew_FretOutOfRange(t *testing.T) {
	_, err := New(notes(t, "C7"), theory.Chromatic(), 12)
	assert.ErrorIs(t, err, theory.ErrFretOutOfRange)

	fb, err := New(notes(t, "C7"), theory.Chromatic(), 11)
	require.NoError(t, err)
	assert.Equal(t, "B7", fb.Strings[0].Frets[11].Note().ID())

	// all-or-nothing: a low string does not rescue a high one
	_, err = New(notes(t, "E2", "A6"), theory.Chromatic(), DefaultFretCount)
	assert.ErrorIs(t, err, theory.ErrFretOutOfRange)

	_, err = New(notes(t, "E2"), theory.Chromatic(), -1)
	assert.ErrorIs(t, err, theory.ErrFretOutOfRange)
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	_, err := New(notes(t, "E4"), nil, 12)
	assert.Error(t, err)

	_, err = New([]theory.Note{{}}, theory.Chromatic(), 12)
	assert.ErrorIs(t, err, theory.ErrInvalidNoteName)

	fb, err := New(nil, theory.Chromatic(), 12)
	require.NoError(t, err)
	assert.Empty(t, fb.Strings)
}

func TestUpdateFretboard(t *testing.T) {
	fb, err := New(notes(t, "E4", "A2"), theory.Chromatic(), 12)
	require.NoError(t, err)

	type snapshot struct {
		ptr   *Fret
		note  theory.Note
		class FretClass
	}
	var before []snapshot
	for i := range fb.Strings {
		for j := range fb.Strings[i].Frets {
			f := &fb.Strings[i].Frets[j]
			before = append(before, snapshot{ptr: f, note: f.Note(), class: f.Class()})
		}
	}
	held := &fb.Strings[0].Frets[1]

	eMinor := scale(t, "E", theory.MinorScaleName)
	fb.UpdateFretboard(eMinor)

	k := 0
	for i := range fb.Strings {
		for j := range fb.Strings[i].Frets {
			f := &fb.Strings[i].Frets[j]
			assert.Same(t, before[k].ptr, f)
			assert.Equal(t, before[k].note, f.Note())
			assert.Equal(t, before[k].class, f.Class())
			assert.Equal(t, eMinor.Classify(f.Note()), f.State())
			k++
		}
	}

	assert.Equal(t, theory.Root, fb.Strings[0].Frets[0].State())
	assert.Equal(t, theory.NonMember, held.State())
	assert.Equal(t, theory.Member, fb.Strings[0].Frets[2].State())
	assert.Same(t, eMinor, fb.Scale())
}

func TestUpdateFretboard_Idempotent(t *testing.T) {
	fb, err := New(notes(t, "E4", "B3", "G3", "D3", "A2", "E2"), theory.Chromatic(), DefaultFretCount)
	require.NoError(t, err)

	cMajor := scale(t, "C", theory.MajorScaleName)
	collect := func() []theory.Classification {
		var states []theory.Classification
		for _, s := range fb.Strings {
			for _, f := range s.Frets {
				states = append(states, f.State())
			}
		}
		return states
	}

	fb.UpdateFretboard(cMajor)
	first := collect()
	fb.UpdateFretboard(cMajor)
	assert.Equal(t, first, collect())
}

func TestFretClass_String(t *testing.T) {
	assert.Equal(t, "zero", FretOpen.String())
	assert.Equal(t, "default", FretStandard.String())
	assert.Equal(t, "twelves", FretOctaveMarker.String())
}
