package models

import (
	"time"
)

// FretboardSettings is one saved fretboard of an owner
type FretboardSettings struct {
	ID         uint      `gorm:"primarykey" json:"-" yaml:"-"`
	CreatedAt  time.Time `json:"-" yaml:"-"`
	UpdatedAt  time.Time `json:"-" yaml:"-"`
	Owner      string    `gorm:"not null;uniqueIndex:idx_owner_title;index" json:"-" yaml:"-"`
	Position   int       `gorm:"not null;default:0" json:"-" yaml:"-"`                           // Display order within the owner's list
	Title      string    `gorm:"not null;uniqueIndex:idx_owner_title" json:"title" yaml:"title"` // Unique per owner
	Tuning     string    `gorm:"not null" json:"tuning" yaml:"tuning"`                           // e.g. "E4,B3,G3,D3,A2,E2"
	RootNote   string    `gorm:"not null" json:"root_note" yaml:"root_note"`
	Scale      string    `gorm:"not null" json:"scale" yaml:"scale"`             // Formula name, e.g. "Minor Scale"
	ViewOption string    `gorm:"not null" json:"view_option" yaml:"view_option"` // "24 frets" or "12 frets"
	// No gorm default: Create would replace a false value with it
	Expanded   bool      `gorm:"not null" json:"expanded" yaml:"expanded"`
}

// FretboardSettingsPatch carries the optional fields of a partial update
type FretboardSettingsPatch struct {
	Tuning     *string `json:"tuning,omitempty"`
	RootNote   *string `json:"root_note,omitempty"`
	Scale      *string `json:"scale,omitempty"`
	ViewOption *string `json:"view_option,omitempty"`
	Expanded   *bool   `json:"expanded,omitempty"`
}

// Apply copies the set fields of p onto s
func (p FretboardSettingsPatch) Apply(s *FretboardSettings) {
	if p.Tuning != nil {
		s.Tuning = *p.Tuning
	}
	if p.RootNote != nil {
		s.RootNote = *p.RootNote
	}
	if p.Scale != nil {
		s.Scale = *p.Scale
	}
	if p.ViewOption != nil {
		s.ViewOption = *p.ViewOption
	}
	if p.Expanded != nil {
		s.Expanded = *p.Expanded
	}
}

// AppSettings is the document form of an owner's settings, used for export/import and the file store
type AppSettings struct {
	Fretboards []FretboardSettings `json:"fretboards" yaml:"fretboards"`
}
