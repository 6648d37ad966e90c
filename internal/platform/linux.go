//go:build linux

package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/watchfire-io/runcat/internal/models"
)

const gsettingsTimeout = 2 * time.Second

type gsettingsTheme struct{}

// NewThemeProvider reads the GNOME interface settings via gsettings(1).
func NewThemeProvider() ThemeProvider {
	return gsettingsTheme{}
}

func (gsettingsTheme) SystemTheme() (models.Theme, error) {
	if _, err := exec.LookPath("gsettings"); err != nil {
		return models.ThemeLight, fmt.Errorf("gsettings not available: %w", err)
	}
	scheme, schemeErr := gsettingsGet("color-scheme")
	gtk, gtkErr := gsettingsGet("gtk-theme")
	if schemeErr != nil && gtkErr != nil {
		return models.ThemeLight, fmt.Errorf("reading interface settings: %w", schemeErr)
	}
	return ThemeFromGSettings(scheme, gtk), nil
}

func gsettingsGet(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", key).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// NewAutostart registers an XDG autostart entry for the current user.
func NewAutostart(cfg AutostartConfig) AutostartRegistrar {
	return NewDesktopEntryAutostart(homeDir(), os.Getenv("XDG_CONFIG_HOME"), cfg)
}
