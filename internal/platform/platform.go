// Package platform reads and writes the OS signals runcat depends on: the
// light/dark theme, launch-at-login registration and the system monitor.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/watchfire-io/runcat/internal/models"
)

// Operating system names as reported by runtime.GOOS.
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

const (
	// AppName names the autostart entry on every platform.
	AppName = "RunCat"
	// LaunchAgentLabel is the launchd label on macOS.
	LaunchAgentLabel = "io.watchfire.runcat"
	// DesktopFileName is the XDG autostart file name on Linux.
	DesktopFileName = "runcat.desktop"
)

// ThemeProvider reads the OS light/dark setting.
type ThemeProvider interface {
	SystemTheme() (models.Theme, error)
}

// AutostartRegistrar reads and writes launch-at-login registration.
type AutostartRegistrar interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}

// AutostartConfig describes what the OS should launch at login.
type AutostartConfig struct {
	Executable string   // absolute path to the runcat binary
	Args       []string // extra arguments
}

// CurrentAutostartConfig launches the running executable.
func CurrentAutostartConfig() (AutostartConfig, error) {
	exe, err := os.Executable()
	if err != nil {
		return AutostartConfig{}, fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return AutostartConfig{Executable: exe}, nil
}

// CommandLine renders the config as a single command line, quoting the
// executable when it contains spaces.
func (c AutostartConfig) CommandLine() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteIfNeeded(c.Executable))
	for _, a := range c.Args {
		parts = append(parts, quoteIfNeeded(a))
	}
	return strings.Join(parts, " ")
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

// ThemeFromLightFlag maps the Windows SystemUsesLightTheme value.
func ThemeFromLightFlag(v uint64) models.Theme {
	if v == 0 {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// ThemeFromAppleInterfaceStyle maps the output of
// "defaults read -g AppleInterfaceStyle". The key is absent in light mode.
func ThemeFromAppleInterfaceStyle(output string) models.Theme {
	if strings.EqualFold(strings.TrimSpace(output), "dark") {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// ThemeFromGSettings maps the GNOME color-scheme, falling back to the GTK
// theme name when the color scheme is "default" or unavailable. Values may
// carry the quotes gsettings prints.
func ThemeFromGSettings(colorScheme, gtkTheme string) models.Theme {
	switch unquote(colorScheme) {
	case "prefer-dark":
		return models.ThemeDark
	case "prefer-light":
		return models.ThemeLight
	}
	if strings.HasSuffix(strings.ToLower(unquote(gtkTheme)), "-dark") {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}

// GenerateLaunchAgentPlist renders a launchd agent that starts runcat at
// login.
func GenerateLaunchAgentPlist(cfg AutostartConfig) string {
	var args strings.Builder
	args.WriteString(fmt.Sprintf("\t\t<string>%s</string>\n", xmlEscape(cfg.Executable)))
	for _, a := range cfg.Args {
		args.WriteString(fmt.Sprintf("\t\t<string>%s</string>\n", xmlEscape(a)))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
%s	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`, LaunchAgentLabel, args.String())
}

// LaunchAgentPath returns the plist location under home.
func LaunchAgentPath(home string) string {
	return filepath.Join(home, "Library", "LaunchAgents", LaunchAgentLabel+".plist")
}

// GenerateDesktopEntry renders an XDG autostart entry.
func GenerateDesktopEntry(cfg AutostartConfig) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=A running cat that shows CPU load in the system tray
Exec=%s
Terminal=false
X-GNOME-Autostart-enabled=true
`, AppName, cfg.CommandLine())
}

// DesktopEntryEnabled reports whether an autostart entry is active. Entries
// marked Hidden or with autostart disabled are ignored by the session.
func DesktopEntryEnabled(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		value = strings.ToLower(strings.TrimSpace(value))
		switch strings.TrimSpace(key) {
		case "Hidden":
			if value == "true" {
				return false
			}
		case "X-GNOME-Autostart-enabled":
			if value == "false" {
				return false
			}
		}
	}
	return true
}

// DesktopEntryPath returns the autostart file location. configHome is
// $XDG_CONFIG_HOME, or empty to use ~/.config.
func DesktopEntryPath(home, configHome string) string {
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "autostart", DesktopFileName)
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	return r.Replace(s)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return home
}
