package engine

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/runcat/internal/assets"
	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/models"
)

const (
	testSamplePeriod = 5 * time.Second
	testThemePeriod  = 7 * time.Second
)

func embeddedResolver() *frames.Resolver {
	return frames.NewResolver(frames.NewFSStore(assets.FS, assets.Dir), nil)
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{})
	assert.True(t, rcerrors.IsCode(err, rcerrors.ErrConfig))
}

func TestNewFailsOnMissingAssets(t *testing.T) {
	_, err := New(Options{
		Sink:     &recordingSink{},
		Sampler:  &fixedSampler{},
		Resolver: frames.NewResolver(frames.NewFSStore(fstest.MapFS{}, assets.Dir), nil),
		Store:    &memoryStore{prefs: models.DefaultPreferences()},
	})
	require.Error(t, err)
	assert.True(t, rcerrors.IsCode(err, rcerrors.ErrAsset))
}

func TestEngineEndToEnd(t *testing.T) {
	clock := &manualClock{}
	sink := &recordingSink{}
	sampler := &fixedSampler{sample: models.LoadSample{CPUPercent: 20, RAMPercent: 30, DiskUsedPercent: 40}}
	store := &memoryStore{prefs: models.DefaultPreferences()}
	themes := &staticTheme{theme: models.ThemeLight}

	e, err := New(Options{
		Sink:              sink,
		Sampler:           sampler,
		Resolver:          embeddedResolver(),
		Store:             store,
		Themes:            themes,
		Clock:             clock,
		SampleInterval:    testSamplePeriod,
		ThemePollInterval: testThemePeriod,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, e.EffectiveTheme())

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return clock.ticker(DefaultFrameInterval) != nil &&
			clock.ticker(testSamplePeriod) != nil &&
			clock.ticker(testThemePeriod) != nil
	}, time.Second, time.Millisecond)
	animTicker := clock.ticker(DefaultFrameInterval)
	monitorTicker := clock.ticker(testSamplePeriod)
	themeTicker := clock.ticker(testThemePeriod)

	assert.Equal(t, LoadingTooltip, sink.Tooltips()[0])
	assert.Error(t, e.Run(ctx), "second Run is rejected")

	// Animation ticks advance the frame.
	animTicker.fire()
	state, ok := e.animation()
	require.True(t, ok)
	assert.Equal(t, "light_cat_1", sink.lastIcon())
	assert.Equal(t, DefaultFrameInterval, state.Interval)

	// 20% CPU at the default cap gives 125ms frames.
	monitorTicker.fire()
	require.Eventually(t, func() bool {
		st, _ := e.animation()
		return st.Interval == 125*time.Millisecond
	}, time.Second, time.Millisecond)
	tips := sink.Tooltips()
	assert.True(t, strings.HasPrefix(tips[len(tips)-1], "CPU: 20.0%"))

	// Menu selections are applied in order on the dispatch goroutine.
	e.SelectCharacter(models.CharacterParrot)
	e.SelectFrameRateCap(models.FPS80)
	state, _ = e.animation()
	assert.Equal(t, models.CharacterParrot, state.FrameSet.Character)
	assert.Equal(t, 10, state.FrameSet.Len())

	// Full load at the 80fps cap gives 12ms frames.
	sampler.mu.Lock()
	sampler.sample = models.LoadSample{CPUPercent: 100}
	sampler.mu.Unlock()
	monitorTicker.fire()
	require.Eventually(t, func() bool {
		st, _ := e.animation()
		return st.Interval == 12*time.Millisecond
	}, time.Second, time.Millisecond)

	// A system theme flip re-resolves while the theme follows the system.
	themes.set(models.ThemeDark)
	themeTicker.fire()
	require.Eventually(t, func() bool {
		st, _ := e.animation()
		return st.FrameSet.Theme == models.ThemeDark
	}, time.Second, time.Millisecond)

	prefs, ok := e.livePreferences()
	require.True(t, ok)
	assert.Equal(t, models.CharacterParrot, prefs.Character)

	cancel()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop")
	}

	_, stopped, _, _ := animTicker.snapshot()
	assert.True(t, stopped)
	sampler.mu.Lock()
	assert.True(t, sampler.warmed)
	sampler.mu.Unlock()

	saved := store.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, models.CharacterParrot, saved[0].Character)
	assert.Equal(t, models.FPS80, saved[0].FrameRateCap)

	_, ok = e.animation()
	assert.False(t, ok, "calls after shutdown are rejected")
	e.SelectCharacter(models.CharacterDino)
}
