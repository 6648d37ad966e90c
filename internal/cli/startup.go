package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/runcat/internal/config"
)

var startupCmd = &cobra.Command{
	Use:       "startup [enable|disable|status]",
	Short:     "Manage launch at login",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"enable", "disable", "status"},
	RunE:      runStartup,
}

func runStartup(cmd *cobra.Command, args []string) error {
	action := "status"
	if len(args) == 1 {
		action = args[0]
	}

	autostart, err := newAutostart()
	if err != nil {
		return err
	}

	switch action {
	case "status":
		enabled, err := autostart.IsEnabled()
		if err != nil {
			return fmt.Errorf("failed to read launch at login: %w", err)
		}
		if enabled {
			fmt.Println(styleSuccess.Render("Launch at login is enabled"))
		} else {
			fmt.Println(styleHint.Render("Launch at login is disabled"))
		}
		return nil

	case "enable", "disable":
		enabled := action == "enable"
		if err := autostart.SetEnabled(enabled); err != nil {
			return fmt.Errorf("failed to %s launch at login: %w", action, err)
		}
		if err := saveStartup(enabled); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Launch at login %sd", action)))
		return nil

	default:
		return fmt.Errorf("unknown action %q (want enable, disable or status)", action)
	}
}

// saveStartup mirrors the registration in settings.yaml.
func saveStartup(enabled bool) error {
	store, err := config.DefaultSettingsStore()
	if err != nil {
		return err
	}
	prefs, _ := store.Load()
	if prefs.Startup == enabled {
		return nil
	}
	prefs.Startup = enabled
	return store.Save(prefs)
}
