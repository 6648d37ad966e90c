package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/runcat/internal/models"
)

func TestThemeFromLightFlag(t *testing.T) {
	assert.Equal(t, models.ThemeDark, ThemeFromLightFlag(0))
	assert.Equal(t, models.ThemeLight, ThemeFromLightFlag(1))
}

func TestThemeFromAppleInterfaceStyle(t *testing.T) {
	assert.Equal(t, models.ThemeDark, ThemeFromAppleInterfaceStyle("Dark\n"))
	assert.Equal(t, models.ThemeLight, ThemeFromAppleInterfaceStyle(""))
	assert.Equal(t, models.ThemeLight, ThemeFromAppleInterfaceStyle("Light"))
}

func TestThemeFromGSettings(t *testing.T) {
	tests := []struct {
		scheme, gtk string
		want        models.Theme
	}{
		{"'prefer-dark'", "'Adwaita'", models.ThemeDark},
		{"'prefer-light'", "'Adwaita-dark'", models.ThemeLight},
		{"'default'", "'Adwaita-dark'", models.ThemeDark},
		{"'default'", "'Yaru'", models.ThemeLight},
		{"", "Arc-Dark", models.ThemeDark},
		{"", "", models.ThemeLight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ThemeFromGSettings(tt.scheme, tt.gtk), "%s/%s", tt.scheme, tt.gtk)
	}
}

func TestCommandLineQuotesSpaces(t *testing.T) {
	cfg := AutostartConfig{Executable: `C:\Program Files\RunCat\runcat.exe`}
	assert.Equal(t, `"C:\Program Files\RunCat\runcat.exe"`, cfg.CommandLine())

	cfg = AutostartConfig{Executable: "/usr/bin/runcat", Args: []string{"--debug"}}
	assert.Equal(t, "/usr/bin/runcat --debug", cfg.CommandLine())
}

func TestGenerateLaunchAgentPlist(t *testing.T) {
	plist := GenerateLaunchAgentPlist(AutostartConfig{Executable: "/Applications/R&C.app/runcat"})
	assert.Contains(t, plist, "<string>"+LaunchAgentLabel+"</string>")
	assert.Contains(t, plist, "<string>/Applications/R&amp;C.app/runcat</string>")
	assert.Contains(t, plist, "<key>RunAtLoad</key>\n\t<true/>")
	assert.True(t, strings.HasPrefix(plist, "<?xml"))
}

func TestDesktopEntry(t *testing.T) {
	entry := GenerateDesktopEntry(AutostartConfig{Executable: "/opt/run cat/runcat"})
	assert.Contains(t, entry, `Exec="/opt/run cat/runcat"`)
	assert.True(t, DesktopEntryEnabled(entry))

	assert.False(t, DesktopEntryEnabled(entry+"Hidden=true\n"))
	assert.False(t, DesktopEntryEnabled(strings.Replace(entry, "enabled=true", "enabled=false", 1)))
}

func TestDesktopEntryPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", ".config", "autostart", DesktopFileName), DesktopEntryPath("/home/u", ""))
	assert.Equal(t, filepath.Join("/xdg", "autostart", DesktopFileName), DesktopEntryPath("/home/u", "/xdg"))
}

func TestFileAutostartRoundTrip(t *testing.T) {
	home := t.TempDir()
	reg := NewDesktopEntryAutostart(home, "", AutostartConfig{Executable: "/usr/bin/runcat"})

	enabled, err := reg.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, reg.SetEnabled(true))
	enabled, err = reg.IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	data, err := os.ReadFile(DesktopEntryPath(home, ""))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=/usr/bin/runcat")

	require.NoError(t, reg.SetEnabled(false))
	require.NoError(t, reg.SetEnabled(false), "disabling twice is fine")
	enabled, err = reg.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestLaunchAgentAutostart(t *testing.T) {
	home := t.TempDir()
	reg := NewLaunchAgentAutostart(home, AutostartConfig{Executable: "/usr/local/bin/runcat"})

	require.NoError(t, reg.SetEnabled(true))
	_, err := os.Stat(LaunchAgentPath(home))
	require.NoError(t, err)

	enabled, err := reg.IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestSystemMonitorCommand(t *testing.T) {
	none := func(string) bool { return false }

	argv, err := SystemMonitorCommand(OSWindows, none)
	require.NoError(t, err)
	assert.Equal(t, []string{"taskmgr.exe"}, argv)

	argv, err = SystemMonitorCommand(OSDarwin, none)
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "-a", "Activity Monitor"}, argv)

	argv, err = SystemMonitorCommand(OSLinux, func(name string) bool { return name == "ksysguard" })
	require.NoError(t, err)
	assert.Equal(t, []string{"ksysguard"}, argv)

	_, err = SystemMonitorCommand(OSLinux, none)
	assert.Error(t, err)

	_, err = SystemMonitorCommand("plan9", none)
	assert.Error(t, err)
}
