// Package cli implements the runcat commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "runcat",
	Short: "A running cat in the system tray that speeds up with CPU load",
	Long: `RunCat shows an animated runner in the system tray. The busier the CPU,
the faster it runs. Hover the icon for CPU, memory and storage usage.

Without a subcommand, runcat starts the tray icon.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			_ = os.Setenv(logger.DebugEnv, "1")
		}
	},
	RunE: runTray,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, styleError.Render("Error: ")+err.Error())
	var rcErr *rcerrors.Error
	if errors.As(err, &rcErr) && rcErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, styleHint.Render("  "+rcErr.Suggestion))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(startupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}
