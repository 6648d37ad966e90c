package tray

import (
	"sync"

	"github.com/getlantern/systray"

	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// Tray is the engine's display surface and menu. It buffers the icon and
// tooltip until the native tray is ready.
type Tray struct {
	ctrl Controller
	opts Options
	log  logger.Logger

	mu      sync.Mutex
	ready   bool
	icon    []byte
	tooltip string

	runners *radioGroup[models.Character]
	themes  *radioGroup[models.Theme]
	limits  *radioGroup[models.FrameRateCap]
	startup menuEntry
	monitor menuEntry
	quit    menuEntry

	done chan struct{}
	once sync.Once
}

var _ engine.DisplaySink = (*Tray)(nil)
var _ engine.MenuNotifier = (*Tray)(nil)

// New creates a tray that forwards selections to ctrl.
func New(ctrl Controller, opts Options) *Tray {
	log := opts.Logger
	if log == nil {
		log = logger.New("[tray]")
	}
	return &Tray{
		ctrl:    ctrl,
		opts:    opts,
		log:     log,
		tooltip: engine.LoadingTooltip,
		done:    make(chan struct{}),
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	systray.Quit()
}

// SetIcon shows a frame.
func (t *Tray) SetIcon(frame frames.Frame) {
	t.mu.Lock()
	t.icon = frame.Icon
	ready := t.ready
	t.mu.Unlock()
	if ready {
		systray.SetIcon(frame.Icon)
	}
}

// SetTooltip shows the load summary on hover.
func (t *Tray) SetTooltip(text string) {
	t.mu.Lock()
	t.tooltip = text
	ready := t.ready
	t.mu.Unlock()
	if ready {
		systray.SetTooltip(text)
	}
}

// Notify re-checks menu entries after a preference change.
func (t *Tray) Notify(n engine.Notification) {
	t.mu.Lock()
	ready := t.ready
	t.mu.Unlock()
	if !ready {
		return
	}
	t.sync(n.Preferences)
}

func (t *Tray) sync(p models.Preferences) {
	t.runners.Select(p.Character)
	t.themes.Select(p.Theme)
	t.limits.Select(p.FrameRateCap)
	if p.Startup {
		t.startup.Check()
	} else {
		t.startup.Uncheck()
	}
}

func (t *Tray) onReady() {
	initial := t.ctrl.Preferences()

	runnerMenu := systray.AddMenuItem("Runner", "")
	t.runners = submenu(runnerMenu, models.Characters(), initial.Character)
	themeMenu := systray.AddMenuItem("Theme", "")
	t.themes = submenu(themeMenu, models.Themes(), initial.Theme)
	limitMenu := systray.AddMenuItem("FPS Max Limit", "")
	t.limits = submenu(limitMenu, models.FrameRateCaps(), initial.FrameRateCap)

	startup := systray.AddMenuItem("Startup", "Launch at login")
	if initial.Startup {
		startup.Check()
	}
	t.startup = systrayEntry{startup}

	systray.AddSeparator()
	t.monitor = systrayEntry{systray.AddMenuItem("Open System Monitor", "")}
	if t.opts.Title != "" {
		systray.AddMenuItem(t.opts.Title, "").Disable()
	}
	t.quit = systrayEntry{systray.AddMenuItem("Exit", "Quit RunCat")}

	t.mu.Lock()
	t.ready = true
	icon, tooltip := t.icon, t.tooltip
	t.mu.Unlock()
	if icon != nil {
		systray.SetIcon(icon)
	}
	systray.SetTooltip(tooltip)

	t.listen()

	if t.opts.OnReady != nil {
		t.opts.OnReady()
	}
}

func (t *Tray) onExit() {
	t.once.Do(func() { close(t.done) })
	if t.opts.OnExit != nil {
		t.opts.OnExit()
	}
}

func (t *Tray) listen() {
	t.runners.listen(t.done, t.ctrl.SelectCharacter)
	t.themes.listen(t.done, t.ctrl.SelectTheme)
	t.limits.listen(t.done, t.ctrl.SelectFrameRateCap)
	go t.handleClicks()
}

func (t *Tray) handleClicks() {
	for {
		select {
		case <-t.done:
			return

		case <-t.startup.Clicked():
			t.ctrl.ToggleStartup()

		case <-t.monitor.Clicked():
			if t.opts.OpenSystemMonitor == nil {
				continue
			}
			if err := t.opts.OpenSystemMonitor(); err != nil {
				t.log.Warn("failed to open system monitor: %v", err)
			}

		case <-t.quit.Clicked():
			if t.opts.OnQuit != nil {
				t.opts.OnQuit()
			}
		}
	}
}
