//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/watchfire-io/runcat/internal/models"
)

const (
	personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	runKey         = `Software\Microsoft\Windows\CurrentVersion\Run`
)

type registryTheme struct{}

// NewThemeProvider reads SystemUsesLightTheme from the registry.
func NewThemeProvider() ThemeProvider {
	return registryTheme{}
}

func (registryTheme) SystemTheme() (models.Theme, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return models.ThemeLight, fmt.Errorf("opening personalize key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("SystemUsesLightTheme")
	if err != nil {
		return models.ThemeLight, fmt.Errorf("reading SystemUsesLightTheme: %w", err)
	}
	return ThemeFromLightFlag(v), nil
}

type registryAutostart struct {
	cfg AutostartConfig
}

// NewAutostart registers runcat under the current user's Run key.
func NewAutostart(cfg AutostartConfig) AutostartRegistrar {
	return &registryAutostart{cfg: cfg}
}

func (r *registryAutostart) IsEnabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()

	_, _, err = k.GetStringValue(AppName)
	if errors.Is(err, registry.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading run entry: %w", err)
	}
	return true, nil
}

func (r *registryAutostart) SetEnabled(enabled bool) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening run key: %w", err)
	}
	defer k.Close()

	if enabled {
		if err := k.SetStringValue(AppName, r.cfg.CommandLine()); err != nil {
			return fmt.Errorf("writing run entry: %w", err)
		}
		return nil
	}
	if err := k.DeleteValue(AppName); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("deleting run entry: %w", err)
	}
	return nil
}
