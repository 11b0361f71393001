// Package prefs remembers small per-user choices between runs, such as the
// initials typed on the name entry screen and the last selected mode.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application key; data lives under the user's
// platform data directory.
const AppName = "fruit-slicer"

const itemKey = "prefs"

// Backend is the key/value storage used by Store.
// *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Prefs is the persisted preference record.
type Prefs struct {
	Initials string `yaml:"initials"`
	LastMode string `yaml:"last_mode"`
}

// Store loads and saves Prefs through a Backend.
// A nil backend turns every operation into a no-op.
type Store struct {
	backend Backend
}

// Open creates a Store backed by gdata under AppName.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("prefs: cannot open data dir: %w", err)
	}
	return New(m), nil
}

// New wraps an existing backend.
func New(b Backend) *Store {
	return &Store{backend: b}
}

// Load returns the saved preferences, or zero Prefs when nothing was saved.
func (s *Store) Load() (Prefs, error) {
	var p Prefs
	if s == nil || s.backend == nil {
		return p, nil
	}
	data, err := s.backend.LoadItem(itemKey)
	if err != nil {
		return p, fmt.Errorf("prefs: cannot load: %w", err)
	}
	if len(data) == 0 {
		return p, nil
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("prefs: cannot parse: %w", err)
	}
	return p, nil
}

// Save writes p, replacing whatever was stored.
func (s *Store) Save(p Prefs) error {
	if s == nil || s.backend == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: cannot encode: %w", err)
	}
	if err := s.backend.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("prefs: cannot save: %w", err)
	}
	return nil
}

// Update loads the current record, applies fn and saves the result.
func (s *Store) Update(fn func(*Prefs)) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	fn(&p)
	return s.Save(p)
}
