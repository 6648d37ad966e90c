package models

import (
	"fmt"
	"strings"
)

// Theme selects the icon palette. ThemeSystem follows the OS setting.
type Theme int

const (
	ThemeSystem Theme = iota
	ThemeLight
	ThemeDark
)

var themeNames = [...]string{"System", "Light", "Dark"}

// Themes returns every theme in menu order.
func Themes() []Theme {
	return []Theme{ThemeSystem, ThemeLight, ThemeDark}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t >= ThemeSystem && t <= ThemeDark
}

func (t Theme) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return themeNames[t]
}

// Effective resolves t against the OS theme. The result is always
// ThemeLight or ThemeDark.
func (t Theme) Effective(system Theme) Theme {
	switch t {
	case ThemeLight, ThemeDark:
		return t
	}
	if system == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether the theme is the dark palette.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ParseTheme parses a theme name case-insensitively.
func ParseTheme(s string) (Theme, error) {
	s = strings.TrimSpace(s)
	for i, name := range themeNames {
		if strings.EqualFold(name, s) {
			return Theme(i), nil
		}
	}
	return ThemeSystem, fmt.Errorf("unknown theme %q", s)
}
