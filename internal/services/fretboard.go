package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Conceptual-Machines/fretboard-api/internal/fretboard"
	"github.com/Conceptual-Machines/fretboard-api/internal/metrics"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
)

// RenderRequest names the three inputs of a fretboard plus presentation options.
// The fret range comes from FretCount when set, then from ViewOption, then from the service default.
type RenderRequest struct {
	Tuning     string `json:"tuning" binding:"required"`
	RootNote   string `json:"root_note"`
	Scale      string `json:"scale"`
	FretCount  *int   `json:"fret_count,omitempty"`
	ViewOption string `json:"view_option"`
	LabelMode  string `json:"label_mode"`
}

// FretboardView is the rendered grid handed to clients
type FretboardView struct {
	Title      string       `json:"title,omitempty"`
	Tuning     string       `json:"tuning"`
	RootNote   string       `json:"root_note"`
	Scale      string       `json:"scale"`
	ScaleNotes []string     `json:"scale_notes"`
	ViewOption string       `json:"view_option,omitempty"`
	LabelMode  string       `json:"label_mode"`
	FretCount  int          `json:"fret_count"`
	Strings    []StringView `json:"strings"`
}

// StringView is one string of the grid, frets ordered from the open string up
type StringView struct {
	ID    int        `json:"id"`
	Frets []FretView `json:"frets"`
}

// FretView is one cell: the note, its label under the label mode, and both CSS-facing classes
type FretView struct {
	Fret      int                   `json:"fret"`
	Note      theory.Note           `json:"note"`
	Label     string                `json:"label"`
	FretClass fretboard.FretClass   `json:"fret_class"`
	NoteState theory.Classification `json:"note_state"`
}

type boardKey struct {
	tuning    string
	fretCount int
}

// FretboardService builds fretboards once per (tuning, fret count) and reclassifies
// the cached board when only the scale changes
type FretboardService struct {
	mu               sync.Mutex
	boards           map[boardKey]*fretboard.Fretboard
	order            []boardKey
	maxBoards        int
	defaultFretCount int
	recorders        []metrics.RenderRecorder
}

func NewFretboardService(defaultFretCount, maxBoards int, recorders ...metrics.RenderRecorder) *FretboardService {
	if defaultFretCount < 0 {
		defaultFretCount = fretboard.DefaultFretCount
	}
	return &FretboardService{
		boards:           make(map[boardKey]*fretboard.Fretboard),
		maxBoards:        maxBoards,
		defaultFretCount: defaultFretCount,
		recorders:        recorders,
	}
}

// Render validates the request and returns the annotated grid
func (s *FretboardService) Render(ctx context.Context, req RenderRequest) (*FretboardView, error) {
	start := time.Now()

	notes, err := fretboard.ParseTuning(req.Tuning)
	if err != nil {
		return nil, err
	}

	scaleName := req.Scale
	if scaleName == "" {
		scaleName = theory.DefaultFormulaName()
	}
	scale, err := theory.ScaleFromFormula(req.RootNote, scaleName)
	if err != nil {
		return nil, err
	}

	fretCount := s.defaultFretCount
	if req.ViewOption != "" {
		n, ok := models.FretCountFor(req.ViewOption)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidViewOption, req.ViewOption)
		}
		fretCount = n
	}
	if req.FretCount != nil {
		fretCount = *req.FretCount
	}

	labelMode := req.LabelMode
	if labelMode == "" {
		labelMode = models.DefaultLabelMode()
	}
	if !models.IsLabelMode(labelMode) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLabelMode, labelMode)
	}

	key := boardKey{tuning: fretboard.FormatTuning(notes), fretCount: fretCount}

	s.mu.Lock()
	board, cacheHit := s.boards[key]
	if cacheHit {
		board.UpdateFretboard(scale)
	} else {
		board, err = fretboard.New(notes, scale, fretCount)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		s.remember(key, board)
	}
	view := buildView(board, scaleName, labelMode)
	view.ViewOption = req.ViewOption
	s.mu.Unlock()

	render := metrics.Render{
		Tuning:   key.tuning,
		Scale:    scaleName,
		Strings:  len(notes),
		Frets:    fretCount,
		CacheHit: cacheHit,
		Duration: time.Since(start),
	}
	for _, r := range s.recorders {
		r.RecordFretboardRender(ctx, render)
	}

	return view, nil
}

// RenderSettings renders a stored fretboard over the range its view option selects;
// fretCount overrides that range when non-nil
func (s *FretboardService) RenderSettings(ctx context.Context, settings models.FretboardSettings, fretCount *int, labelMode string) (*FretboardView, error) {
	view, err := s.Render(ctx, RenderRequest{
		Tuning:     settings.Tuning,
		RootNote:   settings.RootNote,
		Scale:      settings.Scale,
		FretCount:  fretCount,
		ViewOption: settings.ViewOption,
		LabelMode:  labelMode,
	})
	if err != nil {
		return nil, err
	}
	view.Title = settings.Title
	return view, nil
}

// CachedBoards returns how many fretboards are held
func (s *FretboardService) CachedBoards() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// remember must be called with s.mu held; the oldest board is evicted first
func (s *FretboardService) remember(key boardKey, board *fretboard.Fretboard) {
	if s.maxBoards <= 0 {
		return
	}
	for len(s.order) >= s.maxBoards {
		delete(s.boards, s.order[0])
		s.order = s.order[1:]
	}
	s.boards[key] = board
	s.order = append(s.order, key)
}

func buildView(board *fretboard.Fretboard, scaleName, labelMode string) *FretboardView {
	scale := board.Scale()
	view := &FretboardView{
		Tuning:     fretboard.FormatTuning(board.Tuning()),
		RootNote:   scale.RootNoteName(),
		Scale:      scaleName,
		ScaleNotes: scale.Notes(),
		LabelMode:  labelMode,
		FretCount:  board.FretCount(),
		Strings:    make([]StringView, len(board.Strings)),
	}

	for i, str := range board.Strings {
		frets := make([]FretView, len(str.Frets))
		for j := range str.Frets {
			f := &str.Frets[j]
			frets[j] = FretView{
				Fret:      j,
				Note:      f.Note(),
				Label:     label(f, scale, labelMode),
				FretClass: f.Class(),
				NoteState: f.State(),
			}
		}
		view.Strings[i] = StringView{ID: str.ID, Frets: frets}
	}

	return view
}

func label(f *fretboard.Fret, scale *theory.Scale, labelMode string) string {
	switch labelMode {
	case models.LabelNotesWithOctave:
		return f.Note().ID()
	case models.LabelScaleDegrees:
		if f.State() == theory.NonMember {
			return ""
		}
		return strconv.Itoa(scale.Degree(f.Note().Name()))
	case models.LabelDots:
		return ""
	default:
		return f.Note().Name()
	}
}
