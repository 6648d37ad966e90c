package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/runcat/internal/buildinfo"
	"github.com/watchfire-io/runcat/internal/config"
	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
	"github.com/watchfire-io/runcat/internal/platform"
	"github.com/watchfire-io/runcat/internal/tray"
	"github.com/watchfire-io/runcat/internal/watcher"
)

// lazyController forwards tray clicks to the engine, which can only be
// built once the tray exists to act as its display.
type lazyController struct {
	eng *engine.Engine
}

func (c *lazyController) Preferences() models.Preferences          { return c.eng.Preferences() }
func (c *lazyController) SelectCharacter(v models.Character)       { c.eng.SelectCharacter(v) }
func (c *lazyController) SelectTheme(v models.Theme)               { c.eng.SelectTheme(v) }
func (c *lazyController) SelectFrameRateCap(v models.FrameRateCap) { c.eng.SelectFrameRateCap(v) }
func (c *lazyController) ToggleStartup()                           { c.eng.ToggleStartup() }

// runTray runs the tray icon on the main goroutine until Exit is clicked
// or a termination signal arrives.
func runTray(cmd *cobra.Command, args []string) error {
	log.SetFlags(log.Ldate | log.Ltime)
	if f, err := config.OpenLogFile(); err == nil {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
		defer f.Close()
	} else {
		log.Printf("[runcat] WARN: log file unavailable: %v", err)
	}
	runLog := logger.New("[runcat]")

	lock, err := config.AcquireInstance()
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			runLog.Warn("failed to remove instance info: %v", err)
		}
	}()
	runLog.Info("starting %s (PID %d, session %s)", buildinfo.Title(), lock.Info.PID, lock.Info.SessionID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := &lazyController{}
	var (
		t          *tray.Tray
		w          *watcher.Watcher
		deps       engineDeps
		base       models.SettingsSnapshot
		started    atomic.Bool
		engineDone = make(chan struct{})
	)

	t = tray.New(ctrl, tray.Options{
		Title:             buildinfo.Title(),
		OpenSystemMonitor: platform.OpenSystemMonitor,
		OnQuit:            cancel,
		OnReady: func() {
			started.Store(true)
			go func() {
				if err := ctrl.eng.Run(ctx); err != nil {
					runLog.Error("engine stopped: %v", err)
				}
				close(engineDone)
				t.Quit()
			}()
			go waitForSignal(ctx, cancel, runLog)
			if w != nil {
				w.Start()
				go forwardEvents(ctx, w.Events(), deps.store, base, ctrl.eng, runLog)
			}
		},
		OnExit: func() {
			cancel()
			if started.Load() {
				<-engineDone
			}
			if w != nil {
				w.Stop()
			}
		},
	})

	eng, engDeps, err := newEngine(t, t, trayEncoder())
	if err != nil {
		return err
	}
	ctrl.eng, deps = eng, engDeps
	base, _ = deps.store.Snapshot()

	if w, err = watcher.New(logger.New("[watcher]")); err != nil {
		runLog.Warn("settings edits will not be picked up: %v", err)
		w = nil
	} else if err := w.WatchFile(deps.store.Path()); err != nil {
		runLog.Warn("settings edits will not be picked up: %v", err)
		w.Stop()
		w = nil
	}

	// This blocks the main goroutine until the tray exits.
	t.Run()
	runLog.Info("stopped")
	return nil
}

func waitForSignal(ctx context.Context, cancel context.CancelFunc, log logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		log.Info("received signal %v, shutting down", sig)
		cancel()
	case <-ctx.Done():
	}
}

// settingsApplier adopts preferences edited outside the running process.
type settingsApplier interface {
	ApplyPreferences(edit models.PreferenceEdit)
}

type settingsReader interface {
	Snapshot() (models.SettingsSnapshot, error)
}

// forwardEvents turns settings file changes into edits. Only fields that
// changed on disk since the previous read are forwarded, so menu choices
// not yet saved survive unrelated edits.
func forwardEvents(ctx context.Context, events <-chan watcher.Event, store settingsReader, base models.SettingsSnapshot, eng settingsApplier, log logger.Logger) {
	prev := base
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type != watcher.EventFileChanged {
				continue
			}
			snap, err := store.Snapshot()
			if err != nil {
				log.Warn("edited settings partly unreadable: %v", err)
			}
			edit := snap.EditSince(prev)
			prev = snap
			if edit.Empty() {
				continue
			}
			log.Debug("settings edited, applying fields %04b", edit.Fields)
			eng.ApplyPreferences(edit)
		}
	}
}
