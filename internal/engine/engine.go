// Package engine runs the adaptive animation: a fast animation loop, a slow
// load monitor that retunes it, and the preference controller, all
// serialized on one dispatch goroutine.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// LoadingTooltip is shown until the first load sample arrives.
const LoadingTooltip = "Loading..."

// DisplaySink is the surface the engine animates.
type DisplaySink interface {
	IconSink
	TooltipSink
}

// Options wires an Engine. Sink, Sampler, Resolver and Store are required.
type Options struct {
	Sink      DisplaySink
	Notifier  MenuNotifier
	Sampler   LoadSampler
	Resolver  FrameResolver
	Store     SettingsStore
	Themes    ThemeProvider
	Autostart AutostartRegistrar
	Clock     Clock
	Logger    logger.Logger

	// SampleInterval is the load monitor cadence. Zero means 5s.
	SampleInterval time.Duration
	// ThemePollInterval is how often the OS theme is re-read. Zero means
	// SampleInterval.
	ThemePollInterval time.Duration
}

type warmer interface {
	WarmUp(ctx context.Context)
}

type preloader interface {
	Preload() error
}

// Engine owns the animation and preference state.
type Engine struct {
	opts       Options
	log        logger.Logger
	dispatcher *Dispatcher
	anim       *AnimationLoop
	monitor    *LoadMonitorLoop
	prefs      *PreferenceController
	started    atomic.Bool
}

// New validates the icon assets, loads preferences and prepares the loops.
// Missing icon frames are fatal.
func New(opts Options) (*Engine, error) {
	if opts.Sink == nil || opts.Sampler == nil || opts.Resolver == nil || opts.Store == nil {
		return nil, rcerrors.New(rcerrors.ErrConfig, "engine requires a sink, sampler, resolver and store", "")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.SampleInterval <= 0 {
		opts.SampleInterval = DefaultSampleInterval
	}
	if opts.ThemePollInterval <= 0 {
		opts.ThemePollInterval = opts.SampleInterval
	}

	if p, ok := opts.Resolver.(preloader); ok {
		if err := p.Preload(); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		opts:       opts,
		log:        opts.Logger,
		dispatcher: NewDispatcher(),
	}
	e.anim = NewAnimationLoop(opts.Clock, opts.Sink)
	e.prefs = NewPreferenceController(ControllerConfig{
		Store:     opts.Store,
		Themes:    opts.Themes,
		Autostart: opts.Autostart,
		Resolver:  opts.Resolver,
		Target:    e.anim,
		Notifier:  opts.Notifier,
		Logger:    opts.Logger,
	})
	e.prefs.Load()

	if _, err := e.prefs.FrameSet(); err != nil {
		return nil, fmt.Errorf("failed to resolve frames for %s: %w", e.prefs.Preferences().Character, err)
	}

	e.monitor = NewLoadMonitorLoop(MonitorConfig{
		Sampler: opts.Sampler,
		Poster:  e.dispatcher,
		Sink:    opts.Sink,
		Target:  e.anim,
		Limit:   e.prefs.FrameRateCap,
		Clock:   opts.Clock,
		Period:  opts.SampleInterval,
		Logger:  opts.Logger,
	})
	return e, nil
}

// Preferences returns the preferences loaded by New. Once Run has started,
// use Call to read live state.
func (e *Engine) Preferences() models.Preferences {
	return e.prefs.Preferences()
}

// EffectiveTheme returns the theme resolved at load time. Once Run has
// started, use Call to read live state.
func (e *Engine) EffectiveTheme() models.Theme {
	return e.prefs.EffectiveTheme()
}

// Run animates until ctx is cancelled. On exit the animation is stopped,
// the sampling goroutines are joined, and preferences are persisted.
func (e *Engine) Run(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return rcerrors.New(rcerrors.ErrConfig, "engine already started", "")
	}

	set, err := e.prefs.FrameSet()
	if err != nil {
		return err
	}
	e.opts.Sink.SetTooltip(LoadingTooltip)
	e.anim.Start(set, DefaultFrameInterval)
	e.log.Info("animating %s (%s), %d frames", set.Character, set.Theme, set.Len())

	bgCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if w, ok := e.opts.Sampler.(warmer); ok {
			w.WarmUp(bgCtx)
		}
		e.monitor.Run(bgCtx)
	}()
	go func() {
		defer wg.Done()
		e.pollTheme(bgCtx)
	}()

	e.dispatcher.Run(ctx, e.anim)

	e.anim.Stop()
	cancel()
	wg.Wait()
	if err := e.prefs.Persist(); err != nil {
		return err
	}
	e.log.Info("engine stopped")
	return nil
}

// call runs fn on the dispatch goroutine and waits for it. It returns
// false if the engine is not running.
func (e *Engine) call(fn func()) bool {
	done := make(chan struct{})
	if !e.dispatcher.Post(func() {
		fn()
		close(done)
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-e.dispatcher.Done():
		return false
	}
}

// animation returns a copy of the animation loop state.
func (e *Engine) animation() (AnimationState, bool) {
	var state AnimationState
	ok := e.call(func() { state = e.anim.State() })
	return state, ok
}

// livePreferences returns the preferences as the dispatcher sees them.
func (e *Engine) livePreferences() (models.Preferences, bool) {
	var prefs models.Preferences
	ok := e.call(func() { prefs = e.prefs.Preferences() })
	return prefs, ok
}

// SelectCharacter switches the runner asynchronously.
func (e *Engine) SelectCharacter(c models.Character) {
	e.post("runner", func() error { return e.prefs.SetCharacter(c) })
}

// SelectTheme switches the theme preference asynchronously.
func (e *Engine) SelectTheme(t models.Theme) {
	e.post("theme", func() error { return e.prefs.SetTheme(t) })
}

// SelectFrameRateCap switches the frame-rate cap asynchronously.
func (e *Engine) SelectFrameRateCap(c models.FrameRateCap) {
	e.post("fps limit", func() error { return e.prefs.SetFrameRateCap(c) })
}

// SetStartup changes launch at login asynchronously.
func (e *Engine) SetStartup(enabled bool) {
	e.post("startup", func() error { return e.prefs.SetStartup(enabled) })
}

// ToggleStartup flips launch at login asynchronously.
func (e *Engine) ToggleStartup() {
	e.post("startup", func() error { return e.prefs.SetStartup(!e.prefs.Preferences().Startup) })
}

// ApplyPreferences adopts an external settings edit asynchronously.
func (e *Engine) ApplyPreferences(p models.PreferenceEdit) {
	e.post("settings reload", func() error { return e.prefs.Apply(p) })
}

func (e *Engine) post(what string, fn func() error) {
	ok := e.dispatcher.Post(func() {
		if err := fn(); err != nil {
			e.log.Warn("%s change rejected: %v", what, err)
		}
	})
	if !ok {
		e.log.Debug("engine stopped, ignoring %s change", what)
	}
}

// pollTheme re-reads the OS theme off the dispatch goroutine and posts
// the result.
func (e *Engine) pollTheme(ctx context.Context) {
	if e.opts.Themes == nil {
		return
	}
	ticker := e.opts.Clock.NewTicker(e.opts.ThemePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			theme, err := e.opts.Themes.SystemTheme()
			if err != nil {
				e.log.Debug("theme poll failed: %v", err)
				continue
			}
			e.dispatcher.Post(func() { e.prefs.ObserveSystemTheme(theme) })
		}
	}
}
