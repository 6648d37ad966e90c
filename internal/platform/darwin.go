//go:build darwin

package platform

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/watchfire-io/runcat/internal/models"
)

const defaultsTimeout = 2 * time.Second

type defaultsTheme struct{}

// NewThemeProvider reads AppleInterfaceStyle via defaults(1).
func NewThemeProvider() ThemeProvider {
	return defaultsTheme{}
}

func (defaultsTheme) SystemTheme() (models.Theme, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultsTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The key does not exist in light mode.
		return models.ThemeLight, nil
	}
	if err != nil {
		return models.ThemeLight, err
	}
	return ThemeFromAppleInterfaceStyle(string(out)), nil
}

// NewAutostart registers a launch agent for the current user.
func NewAutostart(cfg AutostartConfig) AutostartRegistrar {
	return NewLaunchAgentAutostart(homeDir(), cfg)
}
