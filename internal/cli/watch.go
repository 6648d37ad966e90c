package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/runcat/internal/config"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the cat in the terminal instead of the tray",
	Long: `Run the animation in the terminal with live CPU, memory and storage bars.

Keys: c next runner, t next theme, f next fps limit, s toggle startup,
? help, q quit. Changes are saved on exit like the tray's.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("watch needs an interactive terminal")
	}

	lock, err := config.AcquireInstance()
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	// The TUI owns the screen; log to the file only.
	if f, err := config.OpenLogFile(); err == nil {
		log.SetOutput(f)
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	logger.New("[watch]").Info("starting (PID %d, session %s)", lock.Info.PID, lock.Info.SessionID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		NewEngine: func(sink *tui.Sink) (tui.Engine, error) {
			eng, _, err := newEngine(sink, sink, nil)
			if err != nil {
				return nil, err
			}
			return eng, nil
		},
	})
}
