//go:build !windows && !darwin && !linux

package platform

import (
	"errors"

	"github.com/watchfire-io/runcat/internal/models"
)

var errUnsupported = errors.New("not supported on this platform")

type lightTheme struct{}

// NewThemeProvider always reports the light theme.
func NewThemeProvider() ThemeProvider {
	return lightTheme{}
}

func (lightTheme) SystemTheme() (models.Theme, error) {
	return models.ThemeLight, nil
}

type noAutostart struct{}

// NewAutostart returns a registrar that cannot enable launch at login.
func NewAutostart(AutostartConfig) AutostartRegistrar {
	return noAutostart{}
}

func (noAutostart) IsEnabled() (bool, error) { return false, nil }

func (noAutostart) SetEnabled(enabled bool) error {
	if enabled {
		return errUnsupported
	}
	return nil
}
