package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/runcat/internal/models"
)

func newTestLoop() (*AnimationLoop, *manualClock, *recordingSink) {
	clock := &manualClock{}
	sink := &recordingSink{}
	return NewAnimationLoop(clock, sink), clock, sink
}

func TestAnimationStartShowsFirstFrame(t *testing.T) {
	loop, clock, sink := newTestLoop()
	set := makeSet(models.CharacterCat, models.ThemeLight, 5)

	assert.Nil(t, loop.C(), "stopped loop has no tick channel")
	loop.Start(set, 200*time.Millisecond)

	assert.Equal(t, []string{"light_cat_0"}, sink.Icons())
	state := loop.State()
	assert.True(t, state.Running)
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, 200*time.Millisecond, state.Interval)
	require.Equal(t, 1, clock.count())
	assert.NotNil(t, loop.C())
}

func TestAnimationTickCyclesAndWraps(t *testing.T) {
	loop, _, sink := newTestLoop()
	set := makeSet(models.CharacterCat, models.ThemeLight, 5)
	loop.Start(set, DefaultFrameInterval)

	for i := 0; i < 6; i++ {
		loop.Tick()
	}
	assert.Equal(t, frameNames(set, 0, 1, 2, 3, 4, 0, 1), sink.Icons())
	assert.Equal(t, 2, loop.State().Index)
}

func TestAnimationShorterFrameSetNeverOverruns(t *testing.T) {
	loop, _, sink := newTestLoop()
	parrot := makeSet(models.CharacterParrot, models.ThemeDark, 10)
	loop.Start(parrot, DefaultFrameInterval)
	for i := 0; i < 7; i++ {
		loop.Tick()
	}
	require.Equal(t, 8, loop.State().Index)

	cat := makeSet(models.CharacterCat, models.ThemeDark, 5)
	loop.SetFrameSet(cat)
	assert.Less(t, loop.State().Index, cat.Len())

	for i := 0; i < 12; i++ {
		loop.Tick()
		assert.Less(t, loop.State().Index, cat.Len())
	}
	for _, name := range sink.Icons()[8:] {
		assert.Contains(t, name, "dark_cat_")
	}
}

func TestAnimationFrameSetSwapAppliesOnNextTick(t *testing.T) {
	loop, _, sink := newTestLoop()
	loop.Start(makeSet(models.CharacterCat, models.ThemeLight, 5), DefaultFrameInterval)

	loop.SetFrameSet(makeSet(models.CharacterCat, models.ThemeDark, 5))
	assert.Equal(t, []string{"light_cat_0"}, sink.Icons(), "swap does not redraw")

	loop.Tick()
	assert.Equal(t, "dark_cat_1", sink.lastIcon())
}

func TestAnimationSetIntervalRestartsTicker(t *testing.T) {
	loop, clock, _ := newTestLoop()
	loop.Start(makeSet(models.CharacterCat, models.ThemeLight, 5), DefaultFrameInterval)
	ticker := clock.ticker(DefaultFrameInterval)
	require.NotNil(t, ticker)

	loop.SetInterval(125 * time.Millisecond)

	period, stopped, stops, resets := ticker.snapshot()
	assert.Equal(t, 125*time.Millisecond, period)
	assert.False(t, stopped)
	assert.Equal(t, 1, stops)
	assert.Equal(t, []time.Duration{125 * time.Millisecond}, resets)
	assert.Equal(t, 125*time.Millisecond, loop.State().Interval)
	assert.Equal(t, 1, clock.count(), "ticker is reused")
}

func TestAnimationSetIntervalWhileStopped(t *testing.T) {
	loop, clock, _ := newTestLoop()
	loop.SetInterval(40 * time.Millisecond)

	assert.Equal(t, 0, clock.count())
	assert.Equal(t, 40*time.Millisecond, loop.State().Interval)
	assert.False(t, loop.State().Running)
}

func TestAnimationNonPositiveIntervalIsRaised(t *testing.T) {
	loop, _, _ := newTestLoop()
	loop.Start(makeSet(models.CharacterCat, models.ThemeLight, 5), 0)
	assert.Equal(t, time.Millisecond, loop.State().Interval)

	loop.SetInterval(-time.Second)
	assert.Equal(t, time.Millisecond, loop.State().Interval)
}

func TestAnimationStopIsIdempotent(t *testing.T) {
	loop, clock, sink := newTestLoop()
	loop.Start(makeSet(models.CharacterCat, models.ThemeLight, 5), DefaultFrameInterval)
	ticker := clock.ticker(DefaultFrameInterval)

	loop.Stop()
	loop.Stop()

	_, stopped, stops, _ := ticker.snapshot()
	assert.True(t, stopped)
	assert.Equal(t, 1, stops)
	assert.Nil(t, loop.C())

	loop.Tick()
	assert.Len(t, sink.Icons(), 1, "stopped loop does not draw")
}

func TestAnimationStopBeforeStart(t *testing.T) {
	loop, _, _ := newTestLoop()
	assert.NotPanics(t, loop.Stop)
}

func TestAnimationEmptySetIsHarmless(t *testing.T) {
	loop, _, sink := newTestLoop()
	loop.Start(makeSet(models.CharacterCat, models.ThemeLight, 0), DefaultFrameInterval)
	loop.Tick()
	loop.SetFrameSet(makeSet(models.CharacterCat, models.ThemeLight, 0))
	assert.Empty(t, sink.Icons())
	assert.Equal(t, 0, loop.State().Index)
}
