package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Conceptual-Machines/fretboard-api/internal/logger"
	"github.com/Conceptual-Machines/fretboard-api/internal/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// GormSettingsStore keeps settings in the fretboard_settings table
type GormSettingsStore struct {
	db *gorm.DB
}

func NewGormSettingsStore(db *gorm.DB) *GormSettingsStore {
	return &GormSettingsStore{db: db}
}

// Load returns the owner's rows in display order
func (s *GormSettingsStore) Load(ctx context.Context, owner string) ([]models.FretboardSettings, error) {
	var rows []models.FretboardSettings
	if err := s.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Save replaces all of the owner's rows in one transaction
func (s *GormSettingsStore) Save(ctx context.Context, owner string, fretboards []models.FretboardSettings) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner = ?", owner).Delete(&models.FretboardSettings{}).Error; err != nil {
			return err
		}
		if len(fretboards) == 0 {
			return nil
		}

		rows := make([]models.FretboardSettings, len(fretboards))
		for i, fb := range fretboards {
			fb.ID = 0
			fb.Owner = owner
			fb.Position = i
			rows[i] = fb
		}
		return tx.Create(&rows).Error
	})
}

// fileDocument is the on-disk layout of FileSettingsStore
type fileDocument struct {
	Owners map[string]models.AppSettings `yaml:"owners"`
}

// FileSettingsStore keeps every owner's settings in one YAML file
type FileSettingsStore struct {
	mu   sync.Mutex
	path string
}

func NewFileSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{path: path}
}

// Load returns the owner's settings; a missing file means no settings yet
func (s *FileSettingsStore) Load(_ context.Context, owner string) ([]models.FretboardSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Owners[owner].Fretboards, nil
}

// Save rewrites the file with the owner's new list
func (s *FileSettingsStore) Save(_ context.Context, owner string, fretboards []models.FretboardSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Owners[owner] = models.AppSettings{Fretboards: clone(fretboards)}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	// write then rename so a crash never leaves a truncated file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileSettingsStore) read() (*fileDocument, error) {
	doc := &fileDocument{}
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
		}
	}
	if doc.Owners == nil {
		doc.Owners = make(map[string]models.AppSettings)
	}
	return doc, nil
}

// EncodeSettings renders an owner's list as a YAML document
func EncodeSettings(fretboards []models.FretboardSettings) ([]byte, error) {
	return yaml.Marshal(models.AppSettings{Fretboards: fretboards})
}

// DecodeSettings parses a document produced by EncodeSettings
func DecodeSettings(data []byte) ([]models.FretboardSettings, error) {
	var doc models.AppSettings
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid settings document: %w", err)
	}
	return doc.Fretboards, nil
}

// LogSink logs every settings change
type LogSink struct{}

func (LogSink) Publish(_ context.Context, event SettingsChanged) error {
	logger.Info("Settings saved", logger.Fields{
		"owner":      event.Owner,
		"fretboards": len(event.Fretboards),
	})
	return nil
}
