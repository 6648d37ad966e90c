package engine

import (
	"time"

	"github.com/watchfire-io/runcat/internal/frames"
)

// minFrameInterval guards the ticker against non-positive periods.
const minFrameInterval = time.Millisecond

// IconSink displays one animation frame.
type IconSink interface {
	SetIcon(frame frames.Frame)
}

// AnimationState is a read-only view of the animation.
type AnimationState struct {
	Index    int
	FrameSet frames.FrameSet
	Interval time.Duration
	Running  bool
}

// AnimationLoop cycles a frame set on the fast cadence. It is either
// stopped or running at an interval. All methods must be called from the
// dispatch goroutine.
type AnimationLoop struct {
	clock  Clock
	sink   IconSink
	ticker Ticker

	set      frames.FrameSet
	index    int
	interval time.Duration
	running  bool
}

// NewAnimationLoop creates a stopped loop.
func NewAnimationLoop(clock Clock, sink IconSink) *AnimationLoop {
	return &AnimationLoop{
		clock:    clock,
		sink:     sink,
		interval: DefaultFrameInterval,
	}
}

// Start shows the first frame immediately and ticks every interval from
// then on. Starting a running loop restarts it.
func (a *AnimationLoop) Start(set frames.FrameSet, interval time.Duration) {
	a.set = set
	a.index = 0
	a.interval = normalizeInterval(interval)
	a.restartTicker()
	a.running = true

	if !set.Empty() {
		a.sink.SetIcon(set.Frames[0])
		a.index = 1 % set.Len()
	}
}

// SetInterval changes the tick interval. A running loop is stopped and
// restarted, so the next tick fires a full interval after the call.
func (a *AnimationLoop) SetInterval(d time.Duration) {
	a.interval = normalizeInterval(d)
	if a.running {
		a.restartTicker()
	}
}

// SetFrameSet swaps the frames shown from the next tick on. The current
// index is wrapped into the new set.
func (a *AnimationLoop) SetFrameSet(set frames.FrameSet) {
	a.set = set
	if set.Empty() {
		a.index = 0
		return
	}
	a.index %= set.Len()
}

// Stop halts ticking. Calling Stop on a stopped loop does nothing.
func (a *AnimationLoop) Stop() {
	if !a.running {
		return
	}
	a.ticker.Stop()
	a.running = false
}

// C returns the tick channel, or nil while stopped so a select on it
// blocks.
func (a *AnimationLoop) C() <-chan time.Time {
	if !a.running {
		return nil
	}
	return a.ticker.C()
}

// Tick displays the current frame and advances the index.
func (a *AnimationLoop) Tick() {
	if !a.running || a.set.Empty() {
		return
	}
	n := a.set.Len()
	if a.index < 0 || a.index >= n {
		a.index = 0
	}
	a.sink.SetIcon(a.set.Frames[a.index])
	a.index = (a.index + 1) % n
}

// State returns a snapshot of the loop.
func (a *AnimationLoop) State() AnimationState {
	return AnimationState{
		Index:    a.index,
		FrameSet: a.set,
		Interval: a.interval,
		Running:  a.running,
	}
}

func (a *AnimationLoop) restartTicker() {
	if a.ticker == nil {
		a.ticker = a.clock.NewTicker(a.interval)
		return
	}
	a.ticker.Stop()
	a.ticker.Reset(a.interval)
}

func normalizeInterval(d time.Duration) time.Duration {
	if d < minFrameInterval {
		return minFrameInterval
	}
	return d
}
