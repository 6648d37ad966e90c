package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/runcat/internal/config"
	"github.com/watchfire-io/runcat/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show saved preferences",
	Long: `Show the preferences saved in ~/.runcat/settings.yaml.

A running tray picks up edits made with "runcat settings set".`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <runner|theme|fps|startup> <value>",
	Short: "Change a saved preference",
	Long: `Change a saved preference.

  runner   Cat, Parrot, Horse, Puppy, Dino, Rabbit
  theme    System, Light, Dark
  fps      10fps, 20fps, 40fps, 60fps, 80fps
  startup  true, false`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"runner", "theme", "fps", "startup"},
	RunE:      runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	store, err := config.DefaultSettingsStore()
	if err != nil {
		return err
	}
	prefs, err := store.Load()
	if err != nil {
		fmt.Println(styleWarning.Render("Warning: ") + err.Error())
	}
	printPreferences(prefs)
	fmt.Println(styleHint.Render(store.Path()))
	return nil
}

func printPreferences(p models.Preferences) {
	printField("Runner", p.Character.String())
	printField("Theme", p.Theme.String())
	printField("FPS Max Limit", p.FrameRateCap.String())
	printField("Startup", strconv.FormatBool(p.Startup))
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := config.DefaultSettingsStore()
	if err != nil {
		return err
	}
	prefs, _ := store.Load()

	next, err := applySetting(prefs, args[0], args[1])
	if err != nil {
		return err
	}

	if next.Startup != prefs.Startup {
		autostart, err := newAutostart()
		if err != nil {
			return err
		}
		if err := autostart.SetEnabled(next.Startup); err != nil {
			return fmt.Errorf("failed to update launch at login: %w", err)
		}
	}

	if err := store.Save(next); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("%s set to %s", args[0], args[1])))
	return nil
}

// applySetting returns p with one field changed from its text form.
func applySetting(p models.Preferences, key, value string) (models.Preferences, error) {
	switch strings.ToLower(key) {
	case "runner", "character":
		c, err := models.ParseCharacter(value)
		if err != nil {
			return p, err
		}
		p.Character = c
	case "theme":
		t, err := models.ParseTheme(value)
		if err != nil {
			return p, err
		}
		p.Theme = t
	case "fps", "fps_max_limit":
		f, err := models.ParseFrameRateCap(value)
		if err != nil {
			return p, err
		}
		p.FrameRateCap = f
	case "startup":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return p, fmt.Errorf("startup must be true or false: %w", err)
		}
		p.Startup = b
	default:
		return p, fmt.Errorf("unknown setting %q (want runner, theme, fps or startup)", key)
	}
	return p, nil
}
