package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/models"
)

// manualTicker fires only when the test calls fire.
type manualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	initial time.Duration
	period  time.Duration
	stopped bool
	stops   int
	resets  []time.Duration
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.stops++
}

func (t *manualTicker) Reset(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = false
	t.period = d
	t.resets = append(t.resets, d)
}

// fire blocks until the tick is received.
func (t *manualTicker) fire() {
	t.ch <- time.Now()
}

func (t *manualTicker) snapshot() (period time.Duration, stopped bool, stops int, resets []time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period, t.stopped, t.stops, append([]time.Duration(nil), t.resets...)
}

type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (c *manualClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time), initial: d, period: d}
	c.tickers = append(c.tickers, t)
	return t
}

// ticker returns the ticker created with period d, or nil.
func (c *manualClock) ticker(d time.Duration) *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tickers {
		if t.initial == d {
			return t
		}
	}
	return nil
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type recordingSink struct {
	mu       sync.Mutex
	icons    []string
	tooltips []string
	loads    []models.LoadSample
}

func (s *recordingSink) SetIcon(f frames.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icons = append(s.icons, f.Name)
}

func (s *recordingSink) SetTooltip(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tooltips = append(s.tooltips, text)
}

func (s *recordingSink) SetLoad(sample models.LoadSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads = append(s.loads, sample)
}

func (s *recordingSink) Icons() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.icons...)
}

func (s *recordingSink) Tooltips() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tooltips...)
}

func (s *recordingSink) lastIcon() string {
	icons := s.Icons()
	if len(icons) == 0 {
		return ""
	}
	return icons[len(icons)-1]
}

type fixedSampler struct {
	mu     sync.Mutex
	sample models.LoadSample
	warmed bool
}

func (f *fixedSampler) Sample(context.Context) models.LoadSample {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sample
}

func (f *fixedSampler) WarmUp(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warmed = true
}

type memoryStore struct {
	mu      sync.Mutex
	prefs   models.Preferences
	loadErr error
	saveErr error
	saved   []models.Preferences
}

func (m *memoryStore) Load() (models.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs, m.loadErr
}

func (m *memoryStore) Save(p models.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, p)
	return nil
}

func (m *memoryStore) Saved() []models.Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Preferences(nil), m.saved...)
}

type staticTheme struct {
	mu    sync.Mutex
	theme models.Theme
	err   error
}

func (s *staticTheme) SystemTheme() (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme, s.err
}

func (s *staticTheme) set(t models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

type fakeAutostart struct {
	enabled bool
	readErr error
	setErr  error
}

func (f *fakeAutostart) IsEnabled() (bool, error) { return f.enabled, f.readErr }

func (f *fakeAutostart) SetEnabled(enabled bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.enabled = enabled
	return nil
}

// syntheticResolver builds frame sets without image data.
type syntheticResolver struct {
	missing models.Character
	calls   int
}

func (r *syntheticResolver) Resolve(c models.Character, theme models.Theme) (frames.FrameSet, error) {
	r.calls++
	if c == r.missing && c != models.CharacterCat {
		return frames.FrameSet{}, errors.New("no frames")
	}
	return makeSet(c, theme, c.FrameCount()), nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) kinds() []NotificationKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]NotificationKind, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Kind)
	}
	return out
}

type recordingTarget struct {
	sets []frames.FrameSet
}

func (r *recordingTarget) SetFrameSet(set frames.FrameSet) {
	r.sets = append(r.sets, set)
}

func (r *recordingTarget) last() frames.FrameSet {
	if len(r.sets) == 0 {
		return frames.FrameSet{}
	}
	return r.sets[len(r.sets)-1]
}

// inlinePoster runs posted work immediately.
type inlinePoster struct{}

func (inlinePoster) Post(fn func()) bool {
	fn()
	return true
}

func makeSet(c models.Character, theme models.Theme, n int) frames.FrameSet {
	set := frames.FrameSet{Character: c, Theme: theme}
	for i := 0; i < n; i++ {
		set.Frames = append(set.Frames, frames.Frame{Name: frames.FrameName(theme, c, i)})
	}
	return set
}

func frameNames(set frames.FrameSet, idx ...int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, set.Frames[i].Name)
	}
	return out
}
