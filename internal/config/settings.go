package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/models"
)

// SettingsStore persists Preferences as YAML.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a store backed by the given file.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// DefaultSettingsStore returns the store for ~/.runcat/settings.yaml.
func DefaultSettingsStore() (*SettingsStore, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return NewSettingsStore(path), nil
}

// Path returns the backing file path.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load reads preferences. It always returns usable preferences: absent
// fields take their defaults and corrupt fields are reported in the
// returned error (code SETTINGS) while the valid ones are kept.
func (s *SettingsStore) Load() (models.Preferences, error) {
	snap, err := s.Snapshot()
	return snap.Preferences, err
}

// Snapshot reads preferences and records which fields the file actually
// stated.
func (s *SettingsStore) Snapshot() (models.SettingsSnapshot, error) {
	empty := models.SettingsSnapshot{Preferences: models.DefaultPreferences()}
	if !FileExists(s.path) {
		return empty, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return empty, rcerrors.SettingsCorrupt(SettingsFileName, err)
	}
	return DecodeSnapshot(data)
}

// Save writes preferences to disk.
func (s *SettingsStore) Save(p models.Preferences) error {
	if err := SaveYAML(s.path, models.NewSettingsFile(p)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// DecodePreferences decodes settings YAML field by field.
func DecodePreferences(data []byte) (models.Preferences, error) {
	snap, err := DecodeSnapshot(data)
	return snap.Preferences, err
}

// DecodeSnapshot decodes settings YAML field by field, marking the fields
// that were present and valid.
func DecodeSnapshot(data []byte) (models.SettingsSnapshot, error) {
	snap := models.SettingsSnapshot{Preferences: models.DefaultPreferences()}

	var fields map[string]yaml.Node
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return snap, rcerrors.SettingsCorrupt("document", err)
	}

	p := &snap.Preferences
	return snap, rcerrors.Join(
		decodeField(fields, "runner", models.ParseCharacter, &p.Character, models.FieldCharacter, &snap.Valid),
		decodeField(fields, "theme", models.ParseTheme, &p.Theme, models.FieldTheme, &snap.Valid),
		decodeField(fields, "fps_max_limit", models.ParseFrameRateCap, &p.FrameRateCap, models.FieldFrameRateCap, &snap.Valid),
		decodeField(fields, "startup", strconv.ParseBool, &p.Startup, models.FieldStartup, &snap.Valid),
	)
}

// decodeField decodes one scalar field and parses it into dst, setting
// field in valid. dst is left untouched when the field is absent or
// invalid.
func decodeField[T any](fields map[string]yaml.Node, key string, parse func(string) (T, error), dst *T, field models.PreferenceField, valid *models.PreferenceField) error {
	node, ok := fields[key]
	if !ok {
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return rcerrors.SettingsCorrupt(key, fmt.Errorf("expected a scalar value"))
	}
	v, err := parse(node.Value)
	if err != nil {
		return rcerrors.SettingsCorrupt(key, err)
	}
	*dst = v
	*valid |= field
	return nil
}
