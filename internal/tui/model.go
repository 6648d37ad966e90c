package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/models"
)

const (
	artWidth      = 32
	barWidth      = 30
	errorDuration = 5 * time.Second
)

// Controller applies selections made in the TUI.
type Controller interface {
	SelectCharacter(c models.Character)
	SelectTheme(t models.Theme)
	SelectFrameRateCap(c models.FrameRateCap)
	ToggleStartup()
}

// Model is the watch view.
type Model struct {
	ctrl      Controller
	prefs     models.Preferences
	effective models.Theme

	frameName string
	art       string
	artCache  map[string]string

	tooltip string
	load    models.LoadSample
	hasLoad bool

	cpuBar  progress.Model
	ramBar  progress.Model
	diskBar progress.Model

	width    int
	height   int
	showHelp bool
	help     help.Model
	err      error
}

// NewModel creates the watch view with the engine's initial state.
func NewModel(ctrl Controller, prefs models.Preferences, effective models.Theme) *Model {
	lipgloss.SetHasDarkBackground(effective.IsDark())
	return &Model{
		ctrl:      ctrl,
		prefs:     prefs,
		effective: effective,
		artCache:  make(map[string]string),
		tooltip:   engine.LoadingTooltip,
		cpuBar:    newBar(),
		ramBar:    newBar(),
		diskBar:   newBar(),
		help:      help.New(),
	}
}

func newBar() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case FrameMsg:
		m.frameName = msg.Frame.Name
		art, ok := m.artCache[msg.Frame.Name]
		if !ok {
			var err error
			art, err = RenderArt(msg.Frame.PNG, artWidth)
			if err != nil {
				return m, m.showError(err)
			}
			m.artCache[msg.Frame.Name] = art
		}
		m.art = art
		return m, nil

	case TooltipMsg:
		m.tooltip = msg.Text
		return m, nil

	case LoadMsg:
		m.load = msg.Sample.Clamped()
		m.hasLoad = true
		return m, nil

	case PreferencesMsg:
		n := msg.Notification
		m.prefs = n.Preferences
		if n.Effective != m.effective {
			m.effective = n.Effective
			lipgloss.SetHasDarkBackground(n.Dark())
		}
		return m, nil

	case ErrorMsg:
		return m, m.showError(msg.Err)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, keys.Runner):
		m.ctrl.SelectCharacter(next(models.Characters(), m.prefs.Character))
	case key.Matches(msg, keys.Theme):
		m.ctrl.SelectTheme(next(models.Themes(), m.prefs.Theme))
	case key.Matches(msg, keys.FPS):
		m.ctrl.SelectFrameRateCap(next(models.FrameRateCaps(), m.prefs.FrameRateCap))
	case key.Matches(msg, keys.Startup):
		m.ctrl.ToggleStartup()
	}
	return nil
}

func (m *Model) showError(err error) tea.Cmd {
	m.err = err
	return tea.Tick(errorDuration, func(time.Time) tea.Msg { return ClearErrorMsg{} })
}

// Interval is the frame interval the engine derives from the latest sample.
func (m *Model) Interval() time.Duration {
	if !m.hasLoad {
		return engine.DefaultFrameInterval
	}
	return engine.FrameInterval(m.load.CPUPercent, m.prefs.FrameRateCap)
}

// next returns the value after cur, wrapping around.
func next[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
