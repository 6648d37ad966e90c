package models

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterFrameCounts(t *testing.T) {
	want := map[Character]int{
		CharacterCat:    5,
		CharacterParrot: 10,
		CharacterHorse:  14,
		CharacterPuppy:  5,
		CharacterDino:   7,
		CharacterRabbit: 5,
	}
	require.Len(t, Characters(), len(want))
	for c, n := range want {
		assert.Equal(t, n, c.FrameCount(), c.String())
	}
	assert.Equal(t, 0, Character(42).FrameCount())
}

func TestParseCharacter(t *testing.T) {
	tests := []struct {
		in      string
		want    Character
		wantErr bool
	}{
		{"Cat", CharacterCat, false},
		{"parrot", CharacterParrot, false},
		{"  HORSE ", CharacterHorse, false},
		{"Dino", CharacterDino, false},
		{"unicorn", CharacterCat, true},
		{"", CharacterCat, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCharacter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeEffective(t *testing.T) {
	tests := []struct {
		name   string
		manual Theme
		system Theme
		want   Theme
	}{
		{"system follows dark", ThemeSystem, ThemeDark, ThemeDark},
		{"system follows light", ThemeSystem, ThemeLight, ThemeLight},
		{"system with unknown os value", ThemeSystem, ThemeSystem, ThemeLight},
		{"manual light overrides", ThemeLight, ThemeDark, ThemeLight},
		{"manual dark overrides", ThemeDark, ThemeLight, ThemeDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.manual.Effective(tt.system)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, ThemeSystem, got)
		})
	}
}

func TestParseTheme(t *testing.T) {
	got, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}

func TestFrameRateCapsOrdered(t *testing.T) {
	caps := FrameRateCaps()
	require.NotEmpty(t, caps)
	for i := 1; i < len(caps); i++ {
		assert.Greater(t, caps[i].Rate(), caps[i-1].Rate(), "%s should be faster than %s", caps[i], caps[i-1])
	}
	assert.Equal(t, 1.0, DefaultFrameRateCap.Rate())
}

func TestParseFrameRateCap(t *testing.T) {
	for _, in := range []string{"40fps", "40 FPS", "FPS40", "40"} {
		got, err := ParseFrameRateCap(in)
		require.NoError(t, err, in)
		assert.Equal(t, FPS40, got, in)
	}
	got, err := ParseFrameRateCap("80fps")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Rate())

	_, err = ParseFrameRateCap("fast")
	assert.Error(t, err)
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.Equal(t, CharacterCat, p.Character)
	assert.Equal(t, ThemeSystem, p.Theme)
	assert.Equal(t, FPS40, p.FrameRateCap)
	assert.False(t, p.Startup)
}

func TestNewSettingsFile(t *testing.T) {
	s := NewSettingsFile(Preferences{Character: CharacterHorse, Theme: ThemeDark, FrameRateCap: FPS80, Startup: true})
	assert.Equal(t, SettingsVersion, s.Version)
	assert.Equal(t, "Horse", s.Runner)
	assert.Equal(t, "Dark", s.Theme)
	assert.Equal(t, "80fps", s.FPSMaxLimit)
	assert.True(t, s.Startup)
}

func TestSettingsSnapshotEditSince(t *testing.T) {
	base := DefaultPreferences()
	all := SettingsSnapshot{Preferences: base, Valid: AllPreferenceFields}

	tests := []struct {
		name string
		prev SettingsSnapshot
		next SettingsSnapshot
		want PreferenceField
	}{
		{"identical", all, all, 0},
		{
			"one field changed",
			all,
			SettingsSnapshot{Preferences: Preferences{Character: CharacterCat, Theme: ThemeDark, FrameRateCap: DefaultFrameRateCap}, Valid: AllPreferenceFields},
			FieldTheme,
		},
		{
			"corrupt field is not an edit",
			all,
			SettingsSnapshot{Preferences: base, Valid: AllPreferenceFields &^ FieldStartup},
			0,
		},
		{
			"field repaired after corruption",
			SettingsSnapshot{Preferences: base, Valid: AllPreferenceFields &^ FieldCharacter},
			all,
			FieldCharacter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit := tt.next.EditSince(tt.prev)
			assert.Equal(t, tt.want, edit.Fields)
			assert.Equal(t, tt.want == 0, edit.Empty())
		})
	}
}

func TestLoadSampleTooltip(t *testing.T) {
	s := LoadSample{CPUPercent: 12.345, RAMPercent: 50, DiskUsedPercent: 99.96}
	tip := s.Tooltip()
	assert.Equal(t, "CPU: 12.3%\nRAM: 50.0%\nStorage: 100.0% used", tip)
	assert.Equal(t, 3, len(strings.Split(tip, "\n")))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-3))
	assert.Equal(t, 100.0, ClampPercent(130))
	assert.Equal(t, 0.0, ClampPercent(math.NaN()))
	assert.Equal(t, 42.5, ClampPercent(42.5))

	c := LoadSample{CPUPercent: 101, RAMPercent: -1, DiskUsedPercent: 50}.Clamped()
	assert.Equal(t, LoadSample{CPUPercent: 100, RAMPercent: 0, DiskUsedPercent: 50}, c)
}

func TestNewInstanceInfo(t *testing.T) {
	a := NewInstanceInfo(123)
	b := NewInstanceInfo(123)
	assert.Equal(t, 123, a.PID)
	assert.NotEmpty(t, a.SessionID)
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.False(t, a.StartedAt.IsZero())
}
