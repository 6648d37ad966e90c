package cli

import (
	"runtime"

	"github.com/watchfire-io/runcat/internal/assets"
	"github.com/watchfire-io/runcat/internal/config"
	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/platform"
	"github.com/watchfire-io/runcat/internal/sampler"
)

// engineDeps are the collaborators shared by the tray and watch commands.
type engineDeps struct {
	store     *config.SettingsStore
	autostart platform.AutostartRegistrar
}

func newAutostart() (platform.AutostartRegistrar, error) {
	cfg, err := platform.CurrentAutostartConfig()
	if err != nil {
		return nil, err
	}
	return platform.NewAutostart(cfg), nil
}

// newEngine wires the engine around a display. encode converts PNG frames
// for the display; nil keeps PNG.
func newEngine(sink engine.DisplaySink, notifier engine.MenuNotifier, encode frames.Encoder) (*engine.Engine, engineDeps, error) {
	store, err := config.DefaultSettingsStore()
	if err != nil {
		return nil, engineDeps{}, err
	}
	autostart, err := newAutostart()
	if err != nil {
		return nil, engineDeps{}, err
	}

	eng, err := engine.New(engine.Options{
		Sink:      sink,
		Notifier:  notifier,
		Sampler:   sampler.New(sampler.DefaultConfig(), logger.New("[sampler]")),
		Resolver:  frames.NewResolver(frames.NewFSStore(assets.FS, assets.Dir), encode),
		Store:     store,
		Themes:    platform.NewThemeProvider(),
		Autostart: autostart,
		Logger:    logger.New("[engine]"),
	})
	if err != nil {
		return nil, engineDeps{}, err
	}
	return eng, engineDeps{store: store, autostart: autostart}, nil
}

func trayEncoder() frames.Encoder {
	return frames.EncoderFor(runtime.GOOS)
}
