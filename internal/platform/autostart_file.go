package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileAutostart registers launch at login by writing a file the session
// manager picks up (a launchd plist or an XDG desktop entry).
type fileAutostart struct {
	path    string
	render  func() string
	enabled func(content string) bool
}

func (f *fileAutostart) IsEnabled() (bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if f.enabled == nil {
		return true, nil
	}
	return f.enabled(string(data)), nil
}

func (f *fileAutostart) SetEnabled(enabled bool) error {
	if !enabled {
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", f.path, err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(f.path), err)
	}
	if err := os.WriteFile(f.path, []byte(f.render()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

// NewLaunchAgentAutostart registers a launchd agent under home.
func NewLaunchAgentAutostart(home string, cfg AutostartConfig) AutostartRegistrar {
	return &fileAutostart{
		path:   LaunchAgentPath(home),
		render: func() string { return GenerateLaunchAgentPlist(cfg) },
	}
}

// NewDesktopEntryAutostart registers an XDG autostart entry.
func NewDesktopEntryAutostart(home, configHome string, cfg AutostartConfig) AutostartRegistrar {
	return &fileAutostart{
		path:    DesktopEntryPath(home, configHome),
		render:  func() string { return GenerateDesktopEntry(cfg) },
		enabled: DesktopEntryEnabled,
	}
}
