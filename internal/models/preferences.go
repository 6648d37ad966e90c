package models

// Preferences are the user selections that survive restarts.
type Preferences struct {
	Character    Character
	Theme        Theme
	FrameRateCap FrameRateCap
	Startup      bool
}

// DefaultPreferences returns the values used for any absent or corrupt field.
func DefaultPreferences() Preferences {
	return Preferences{
		Character:    CharacterCat,
		Theme:        ThemeSystem,
		FrameRateCap: DefaultFrameRateCap,
		Startup:      false,
	}
}

// SettingsFile is the on-disk shape of ~/.runcat/settings.yaml.
type SettingsFile struct {
	Version     int    `yaml:"version"`
	Runner      string `yaml:"runner"`
	Theme       string `yaml:"theme"`
	FPSMaxLimit string `yaml:"fps_max_limit"`
	Startup     bool   `yaml:"startup"`
}

// SettingsVersion is the current settings schema version.
const SettingsVersion = 1

// NewSettingsFile converts preferences into their persisted form.
func NewSettingsFile(p Preferences) *SettingsFile {
	return &SettingsFile{
		Version:     SettingsVersion,
		Runner:      p.Character.String(),
		Theme:       p.Theme.String(),
		FPSMaxLimit: p.FrameRateCap.String(),
		Startup:     p.Startup,
	}
}

// PreferenceField is a bit set of persisted preference fields.
type PreferenceField uint8

const (
	FieldCharacter PreferenceField = 1 << iota
	FieldTheme
	FieldFrameRateCap
	FieldStartup
)

// AllPreferenceFields selects every persisted field.
const AllPreferenceFields = FieldCharacter | FieldTheme | FieldFrameRateCap | FieldStartup

// Has reports whether every field in x is set in f.
func (f PreferenceField) Has(x PreferenceField) bool {
	return f&x == x
}

// SettingsSnapshot is what one read of the settings file yielded. Valid
// holds the fields that were present and parseable; the others carry
// defaults.
type SettingsSnapshot struct {
	Preferences Preferences
	Valid       PreferenceField
}

// PreferenceEdit is a partial update. Only the fields in Fields are taken
// from Values.
type PreferenceEdit struct {
	Fields PreferenceField
	Values Preferences
}

// Empty reports whether the edit changes nothing.
func (e PreferenceEdit) Empty() bool {
	return e.Fields == 0
}

// EditSince returns the fields of s that were edited after prev was read:
// valid in s and either unreadable in prev or holding a different value.
func (s SettingsSnapshot) EditSince(prev SettingsSnapshot) PreferenceEdit {
	edit := PreferenceEdit{Values: s.Preferences}
	changed := func(f PreferenceField, differs bool) {
		if s.Valid.Has(f) && (!prev.Valid.Has(f) || differs) {
			edit.Fields |= f
		}
	}
	cur, old := s.Preferences, prev.Preferences
	changed(FieldCharacter, cur.Character != old.Character)
	changed(FieldTheme, cur.Theme != old.Theme)
	changed(FieldFrameRateCap, cur.FrameRateCap != old.FrameRateCap)
	changed(FieldStartup, cur.Startup != old.Startup)
	return edit
}
