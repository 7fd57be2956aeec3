package manual

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"sar2tools/internal/markup"
)

// Preference keys persisted in a Store.
const (
	KeySelectedTypes = "selected_types"
	KeyFilter        = "filter"
)

// Store persists preference values between sessions.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Preferences drive the navigation filter: the context classes shown and a
// case-insensitive substring filter over identifier names.
type Preferences struct {
	Types  []string `json:"types" yaml:"types"`
	Filter string   `json:"filter" yaml:"filter"`
}

// DefaultPreferences selects every context and no filter.
func DefaultPreferences() Preferences {
	return Preferences{Types: markup.AllClasses()}
}

// LoadPreferences reads preferences from s. Missing keys keep their default;
// a stored empty type list means nothing is selected.
func LoadPreferences(s Store) Preferences {
	p := DefaultPreferences()
	if s == nil {
		return p
	}
	if v, ok := s.Get(KeySelectedTypes); ok {
		p.Types = parseTypes(v)
	}
	if v, ok := s.Get(KeyFilter); ok {
		p.Filter = v
	}
	return p
}

func parseTypes(v string) []string {
	types := []string{}
	for _, t := range strings.Fields(v) {
		if _, ok := markup.ContextForClass(t); ok && !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	return types
}

// Save writes p to s.
func (p Preferences) Save(s Store) error {
	if err := s.Set(KeySelectedTypes, strings.Join(p.Types, " ")); err != nil {
		return err
	}
	return s.Set(KeyFilter, p.Filter)
}

// Selected reports whether class is shown.
func (p Preferences) Selected(class string) bool {
	return slices.Contains(p.Types, class)
}

// Toggle flips class, keeping the types in context display order.
func (p Preferences) Toggle(class string) Preferences {
	on := !p.Selected(class)
	var types []string
	for _, c := range markup.AllClasses() {
		if (c == class && on) || (c != class && p.Selected(c)) {
			types = append(types, c)
		}
	}
	p.Types = types
	return p
}

// Visible reports whether e passes the name filter and shares at least one
// class with the selection.
func (p Preferences) Visible(e NavEntry) bool {
	if p.Filter != "" && !strings.Contains(strings.ToUpper(e.Name), strings.ToUpper(p.Filter)) {
		return false
	}
	for _, c := range e.Classes {
		if p.Selected(c) {
			return true
		}
	}
	return false
}

// MemoryStore keeps preferences for the lifetime of the process.
type MemoryStore map[string]string

// Get implements Store.
func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Store.
func (m MemoryStore) Set(key, value string) error {
	m[key] = value
	return nil
}

// FileStore keeps preferences in a YAML file.
type FileStore struct {
	path   string
	values map[string]string
}

// DefaultPreferencesPath is sar2tools/preferences.yaml under the user
// configuration directory.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sar2tools", "preferences.yaml"), nil
}

// NewFileStore loads path if it exists.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: map[string]string{}}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(b, &fs.values); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	if fs.values == nil {
		fs.values = map[string]string{}
	}
	return fs, nil
}

// Get implements Store.
func (f *FileStore) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Set implements Store and rewrites the file.
func (f *FileStore) Set(key, value string) error {
	f.values[key] = value
	b, err := yaml.Marshal(f.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o644)
}
