package engine

import (
	"fmt"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// SettingsStore loads and saves preferences.
type SettingsStore interface {
	Load() (models.Preferences, error)
	Save(p models.Preferences) error
}

// ThemeProvider reads the OS light/dark setting.
type ThemeProvider interface {
	SystemTheme() (models.Theme, error)
}

// AutostartRegistrar reads and writes the OS launch-at-login registration.
type AutostartRegistrar interface {
	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}

// FrameResolver maps a character and effective theme to frames.
type FrameResolver interface {
	Resolve(character models.Character, theme models.Theme) (frames.FrameSet, error)
}

// FrameSetTarget receives re-resolved frame sets.
type FrameSetTarget interface {
	SetFrameSet(set frames.FrameSet)
}

// NotificationKind identifies what a preference change affected.
type NotificationKind int

const (
	// FrameSetChanged means the animated frames were swapped.
	FrameSetChanged NotificationKind = iota
	// ThemeChanged means the effective palette changed.
	ThemeChanged
	// PreferencesChanged means a selection changed without affecting frames.
	PreferencesChanged
)

func (k NotificationKind) String() string {
	switch k {
	case FrameSetChanged:
		return "frameset"
	case ThemeChanged:
		return "theme"
	case PreferencesChanged:
		return "preferences"
	}
	return fmt.Sprintf("NotificationKind(%d)", int(k))
}

// Notification describes a change for menus and other views.
type Notification struct {
	Kind        NotificationKind
	Preferences models.Preferences
	// Effective is the concrete theme in use after the change.
	Effective models.Theme
}

// Dark reports whether the dark palette is in effect.
func (n Notification) Dark() bool {
	return n.Effective.IsDark()
}

// MenuNotifier is told about every accepted preference change.
type MenuNotifier interface {
	Notify(n Notification)
}

// ControllerConfig wires a PreferenceController.
type ControllerConfig struct {
	Store     SettingsStore
	Themes    ThemeProvider
	Autostart AutostartRegistrar
	Resolver  FrameResolver
	Target    FrameSetTarget
	Notifier  MenuNotifier
	Logger    logger.Logger
}

// PreferenceController owns the current preferences and applies changes.
// After Load it must only be used from the dispatch goroutine.
type PreferenceController struct {
	cfg    ControllerConfig
	log    logger.Logger
	prefs  models.Preferences
	system models.Theme
}

// NewPreferenceController creates a controller holding default preferences.
func NewPreferenceController(cfg ControllerConfig) *PreferenceController {
	log := cfg.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &PreferenceController{
		cfg:    cfg,
		log:    log,
		prefs:  models.DefaultPreferences(),
		system: models.ThemeLight,
	}
}

// Load reads persisted preferences, the autostart registration and the OS
// theme. Failures are logged and fall back to defaults.
func (p *PreferenceController) Load() {
	prefs, err := p.cfg.Store.Load()
	if err != nil {
		p.log.Warn("settings partly unreadable, using defaults: %v", err)
	}
	p.prefs = prefs

	if p.cfg.Autostart != nil {
		enabled, err := p.cfg.Autostart.IsEnabled()
		if err != nil {
			p.log.Warn("%v", rcerrors.SignalUnreadable("autostart", err))
		} else {
			p.prefs.Startup = enabled
		}
	}

	p.system = p.readSystemTheme()
}

// Preferences returns the current preferences.
func (p *PreferenceController) Preferences() models.Preferences {
	return p.prefs
}

// FrameRateCap returns the current frame-rate cap.
func (p *PreferenceController) FrameRateCap() models.FrameRateCap {
	return p.prefs.FrameRateCap
}

// SystemTheme returns the last observed OS theme.
func (p *PreferenceController) SystemTheme() models.Theme {
	return p.system
}

// EffectiveTheme resolves the theme preference against the OS theme.
func (p *PreferenceController) EffectiveTheme() models.Theme {
	return p.prefs.Theme.Effective(p.system)
}

// FrameSet resolves the frames for the current preferences.
func (p *PreferenceController) FrameSet() (frames.FrameSet, error) {
	return p.cfg.Resolver.Resolve(p.prefs.Character, p.EffectiveTheme())
}

// SetCharacter switches the runner.
func (p *PreferenceController) SetCharacter(c models.Character) error {
	if !c.Valid() {
		return rcerrors.New(rcerrors.ErrConfig, fmt.Sprintf("unknown runner %d", int(c)), "")
	}
	return p.change(func(prefs *models.Preferences) { prefs.Character = c }, FrameSetChanged)
}

// SetTheme switches the theme preference.
func (p *PreferenceController) SetTheme(t models.Theme) error {
	if !t.Valid() {
		return rcerrors.New(rcerrors.ErrConfig, fmt.Sprintf("unknown theme %d", int(t)), "")
	}
	return p.change(func(prefs *models.Preferences) { prefs.Theme = t }, FrameSetChanged, ThemeChanged)
}

// SetFrameRateCap switches the frame-rate cap. The new cap applies from
// the next load sample.
func (p *PreferenceController) SetFrameRateCap(c models.FrameRateCap) error {
	if !c.Valid() {
		return rcerrors.New(rcerrors.ErrConfig, fmt.Sprintf("unknown frame rate cap %d", int(c)), "")
	}
	return p.change(func(prefs *models.Preferences) { prefs.FrameRateCap = c }, PreferencesChanged)
}

// SetStartup registers or unregisters launch at login. The preference only
// changes when the OS call succeeds.
func (p *PreferenceController) SetStartup(enabled bool) error {
	if p.cfg.Autostart == nil {
		return rcerrors.New(rcerrors.ErrConfig, "launch at login is not supported here", "")
	}
	if err := p.cfg.Autostart.SetEnabled(enabled); err != nil {
		p.log.Error("failed to update launch at login: %v", err)
		return err
	}
	p.prefs.Startup = enabled
	p.notify(PreferencesChanged)
	return nil
}

// ObserveSystemTheme records the OS theme. When the theme preference is
// System and the effective theme flips, frames are re-resolved.
func (p *PreferenceController) ObserveSystemTheme(system models.Theme) {
	if system != models.ThemeDark {
		system = models.ThemeLight
	}
	if system == p.system {
		return
	}
	before := p.EffectiveTheme()
	p.system = system
	if p.EffectiveTheme() == before {
		return
	}
	p.log.Info("system theme changed to %s", system)
	if err := p.resolve(); err != nil {
		p.system = flip(system)
		return
	}
	p.notify(FrameSetChanged)
	p.notify(ThemeChanged)
}

// Apply adopts the edited fields of an external settings change. Fields
// outside edit.Fields keep their in-memory value, and rejected fields keep
// their current value.
func (p *PreferenceController) Apply(edit models.PreferenceEdit) error {
	var errs []error
	cur, next := p.prefs, edit.Values
	if edit.Fields.Has(models.FieldCharacter) && next.Character != cur.Character {
		errs = append(errs, p.SetCharacter(next.Character))
	}
	if edit.Fields.Has(models.FieldTheme) && next.Theme != cur.Theme {
		errs = append(errs, p.SetTheme(next.Theme))
	}
	if edit.Fields.Has(models.FieldFrameRateCap) && next.FrameRateCap != cur.FrameRateCap {
		errs = append(errs, p.SetFrameRateCap(next.FrameRateCap))
	}
	if edit.Fields.Has(models.FieldStartup) && next.Startup != cur.Startup && p.cfg.Autostart != nil {
		errs = append(errs, p.SetStartup(next.Startup))
	}
	return rcerrors.Join(errs...)
}

// Persist saves the current preferences. Failures are logged and returned.
func (p *PreferenceController) Persist() error {
	if err := p.cfg.Store.Save(p.prefs); err != nil {
		p.log.Error("failed to save settings: %v", err)
		return err
	}
	return nil
}

func (p *PreferenceController) change(mutate func(*models.Preferences), kinds ...NotificationKind) error {
	prev := p.prefs
	mutate(&p.prefs)
	if p.prefs == prev {
		return nil
	}
	if err := p.resolve(); err != nil {
		p.prefs = prev
		return err
	}
	for _, k := range kinds {
		p.notify(k)
	}
	return nil
}

// resolve pushes the frames for the current preferences to the target.
func (p *PreferenceController) resolve() error {
	set, err := p.FrameSet()
	if err != nil {
		p.log.Error("failed to resolve frames, keeping current: %v", err)
		return err
	}
	if p.cfg.Target != nil {
		p.cfg.Target.SetFrameSet(set)
	}
	return nil
}

func (p *PreferenceController) notify(kind NotificationKind) {
	if p.cfg.Notifier == nil {
		return
	}
	p.cfg.Notifier.Notify(Notification{
		Kind:        kind,
		Preferences: p.prefs,
		Effective:   p.EffectiveTheme(),
	})
}

func (p *PreferenceController) readSystemTheme() models.Theme {
	if p.cfg.Themes == nil {
		return models.ThemeLight
	}
	theme, err := p.cfg.Themes.SystemTheme()
	if err != nil {
		p.log.Warn("%v; assuming light", rcerrors.SignalUnreadable("theme", err))
		return models.ThemeLight
	}
	if theme != models.ThemeDark {
		return models.ThemeLight
	}
	return theme
}

func flip(t models.Theme) models.Theme {
	if t == models.ThemeDark {
		return models.ThemeLight
	}
	return models.ThemeDark
}
