package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Conceptual-Machines/fretboard-api/internal/fretboard"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"github.com/Conceptual-Machines/fretboard-api/internal/theory"
)

var (
	ErrFieldsRequired     = errors.New("all fretboard fields are required")
	ErrTitleRequired      = errors.New("fretboard title is required")
	ErrTitleNotUnique     = errors.New("fretboard title must be unique")
	ErrFretboardNotFound  = errors.New("fretboard not found")
	ErrInvalidViewOption  = errors.New("invalid view option")
	ErrInvalidLabelMode   = errors.New("invalid label mode")
	errSettingsStoreEmpty = errors.New("settings store is required")
)

// SettingsChanged is published after every successful mutation of an owner's settings
type SettingsChanged struct {
	Owner      string
	Fretboards []models.FretboardSettings
}

// SettingsSink consumes change events. A sink error aborts the mutation.
type SettingsSink interface {
	Publish(ctx context.Context, event SettingsChanged) error
}

// SettingsStore is the durable side of settings
type SettingsStore interface {
	Load(ctx context.Context, owner string) ([]models.FretboardSettings, error)
	Save(ctx context.Context, owner string, fretboards []models.FretboardSettings) error
}

// storeSink persists every change event
type storeSink struct {
	store SettingsStore
}

func (s storeSink) Publish(ctx context.Context, event SettingsChanged) error {
	return s.store.Save(ctx, event.Owner, event.Fretboards)
}

// SettingsService manages the ordered list of fretboards each owner keeps
type SettingsService struct {
	mu     sync.Mutex
	store  SettingsStore
	sinks  []SettingsSink
	owners map[string][]models.FretboardSettings
}

// NewSettingsService persists through store; extra sinks run after the store succeeds
func NewSettingsService(store SettingsStore, sinks ...SettingsSink) (*SettingsService, error) {
	if store == nil {
		return nil, errSettingsStoreEmpty
	}
	return &SettingsService{
		store:  store,
		sinks:  append([]SettingsSink{storeSink{store: store}}, sinks...),
		owners: make(map[string][]models.FretboardSettings),
	}, nil
}

// DefaultSettings returns the fretboards a new owner starts with
func DefaultSettings() []models.FretboardSettings {
	defaultRoot := theory.NoteNames()[0]
	return []models.FretboardSettings{
		{
			Title:      "Standard E",
			Tuning:     "E4,B3,G3,D3,A2,E2",
			RootNote:   defaultRoot,
			Scale:      theory.DefaultFormulaName(),
			ViewOption: models.DefaultViewOption(),
			Expanded:   true,
		},
		{
			Title:      "Drop D",
			Tuning:     "E4,B3,G3,D3,A2,D2",
			RootNote:   "D",
			Scale:      theory.MinorScaleName,
			ViewOption: models.DefaultViewOption(),
			Expanded:   true,
		},
	}
}

// List returns the owner's fretboards in order, seeding the defaults on first use
func (s *SettingsService) List(ctx context.Context, owner string) ([]models.FretboardSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return clone(current), nil
}

// Get returns a single fretboard by title
func (s *SettingsService) Get(ctx context.Context, owner, title string) (models.FretboardSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return models.FretboardSettings{}, err
	}
	i := indexOfTitle(current, title)
	if i < 0 {
		return models.FretboardSettings{}, fmt.Errorf("%w: %s", ErrFretboardNotFound, title)
	}
	return current[i], nil
}

// Add appends a fretboard; every field is required and the title must be unique
func (s *SettingsService) Add(ctx context.Context, owner string, settings models.FretboardSettings) (models.FretboardSettings, error) {
	if err := ValidateSettings(settings); err != nil {
		return models.FretboardSettings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return models.FretboardSettings{}, err
	}
	if indexOfTitle(current, settings.Title) >= 0 {
		return models.FretboardSettings{}, ErrTitleNotUnique
	}

	next := append(clone(current), settings)
	if err := s.commit(ctx, owner, next); err != nil {
		return models.FretboardSettings{}, err
	}
	return s.owners[owner][len(next)-1], nil
}

// Rename changes a fretboard's title
func (s *SettingsService) Rename(ctx context.Context, owner, oldTitle, newTitle string) (models.FretboardSettings, error) {
	if newTitle == "" {
		return models.FretboardSettings{}, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return models.FretboardSettings{}, err
	}
	i := indexOfTitle(current, oldTitle)
	if i < 0 {
		return models.FretboardSettings{}, fmt.Errorf("%w: %s", ErrFretboardNotFound, oldTitle)
	}
	if indexOfTitle(current, newTitle) >= 0 {
		return models.FretboardSettings{}, ErrTitleNotUnique
	}

	next := clone(current)
	next[i].Title = newTitle
	if err := s.commit(ctx, owner, next); err != nil {
		return models.FretboardSettings{}, err
	}
	return s.owners[owner][i], nil
}

// Update applies a partial change to tuning, root, scale, view option or expansion
func (s *SettingsService) Update(ctx context.Context, owner, title string, patch models.FretboardSettingsPatch) (models.FretboardSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return models.FretboardSettings{}, err
	}
	i := indexOfTitle(current, title)
	if i < 0 {
		return models.FretboardSettings{}, fmt.Errorf("%w: %s", ErrFretboardNotFound, title)
	}

	next := clone(current)
	patch.Apply(&next[i])
	if err := ValidateSettings(next[i]); err != nil {
		return models.FretboardSettings{}, err
	}
	if err := s.commit(ctx, owner, next); err != nil {
		return models.FretboardSettings{}, err
	}
	return s.owners[owner][i], nil
}

// Remove deletes a fretboard by title
func (s *SettingsService) Remove(ctx context.Context, owner, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, owner)
	if err != nil {
		return err
	}
	i := indexOfTitle(current, title)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrFretboardNotFound, title)
	}

	next := append(clone(current[:i]), current[i+1:]...)
	return s.commit(ctx, owner, next)
}

// Replace swaps the owner's whole list, as done by an import
func (s *SettingsService) Replace(ctx context.Context, owner string, fretboards []models.FretboardSettings) ([]models.FretboardSettings, error) {
	seen := make(map[string]bool, len(fretboards))
	for _, fb := range fretboards {
		if err := ValidateSettings(fb); err != nil {
			return nil, fmt.Errorf("fretboard %q: %w", fb.Title, err)
		}
		if seen[fb.Title] {
			return nil, fmt.Errorf("fretboard %q: %w", fb.Title, ErrTitleNotUnique)
		}
		seen[fb.Title] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, owner, clone(fretboards)); err != nil {
		return nil, err
	}
	return clone(s.owners[owner]), nil
}

// ValidateSettings checks required fields, then that the fretboard can be rendered
func ValidateSettings(settings models.FretboardSettings) error {
	if settings.Title == "" || settings.Tuning == "" || settings.RootNote == "" ||
		settings.Scale == "" || settings.ViewOption == "" {
		return ErrFieldsRequired
	}

	if _, err := fretboard.ParseTuning(settings.Tuning); err != nil {
		return err
	}
	if !theory.IsNoteName(settings.RootNote) {
		return fmt.Errorf("%w: %s", theory.ErrInvalidRootNote, settings.RootNote)
	}
	if _, ok := theory.LookupFormula(settings.Scale); !ok {
		return fmt.Errorf("%w: %s", theory.ErrUnknownScale, settings.Scale)
	}
	if !models.IsViewOption(settings.ViewOption) {
		return fmt.Errorf("%w: %s", ErrInvalidViewOption, settings.ViewOption)
	}
	return nil
}

// load must be called with s.mu held
func (s *SettingsService) load(ctx context.Context, owner string) ([]models.FretboardSettings, error) {
	if current, ok := s.owners[owner]; ok {
		return current, nil
	}

	stored, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(stored) > 0 {
		s.owners[owner] = normalize(owner, stored)
		return s.owners[owner], nil
	}

	if err := s.commit(ctx, owner, DefaultSettings()); err != nil {
		return nil, err
	}
	return s.owners[owner], nil
}

// commit publishes the change and only then replaces the cached list; must be called with s.mu held
func (s *SettingsService) commit(ctx context.Context, owner string, next []models.FretboardSettings) error {
	next = normalize(owner, next)
	event := SettingsChanged{Owner: owner, Fretboards: clone(next)}
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	s.owners[owner] = next
	return nil
}

func normalize(owner string, fretboards []models.FretboardSettings) []models.FretboardSettings {
	for i := range fretboards {
		fretboards[i].Owner = owner
		fretboards[i].Position = i
	}
	return fretboards
}

func indexOfTitle(fretboards []models.FretboardSettings, title string) int {
	for i, fb := range fretboards {
		if fb.Title == title {
			return i
		}
	}
	return -1
}

func clone(fretboards []models.FretboardSettings) []models.FretboardSettings {
	return append([]models.FretboardSettings(nil), fretboards...)
}
