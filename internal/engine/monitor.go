package engine

import (
	"context"
	"time"

	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// LoadSampler reads a load sample. It may block on sensor I/O.
type LoadSampler interface {
	Sample(ctx context.Context) models.LoadSample
}

// TooltipSink displays the load summary.
type TooltipSink interface {
	SetTooltip(text string)
}

// LoadSink is implemented by sinks that want the raw sample as well as the
// tooltip text.
type LoadSink interface {
	SetLoad(sample models.LoadSample)
}

// IntervalTarget receives the frame interval derived from each sample.
type IntervalTarget interface {
	SetInterval(d time.Duration)
}

// MonitorConfig wires a LoadMonitorLoop.
type MonitorConfig struct {
	Sampler LoadSampler
	Poster  Poster
	Sink    TooltipSink
	Target  IntervalTarget
	// Limit returns the current frame-rate cap. It is called on the
	// dispatch goroutine.
	Limit  func() models.FrameRateCap
	Clock  Clock
	Period time.Duration
	Logger logger.Logger
}

// LoadMonitorLoop samples load on the slow cadence and retunes the
// animation from the result. Sampling runs on the caller's goroutine; the
// tooltip and interval updates are posted to the dispatcher.
type LoadMonitorLoop struct {
	cfg MonitorConfig
	log logger.Logger
}

// NewLoadMonitorLoop creates a monitor loop.
func NewLoadMonitorLoop(cfg MonitorConfig) *LoadMonitorLoop {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Period <= 0 {
		cfg.Period = DefaultSampleInterval
	}
	if cfg.Limit == nil {
		cfg.Limit = func() models.FrameRateCap { return models.DefaultFrameRateCap }
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &LoadMonitorLoop{cfg: cfg, log: log}
}

// Run samples every period until ctx is cancelled. The first sample is
// taken one period after Run starts.
func (m *LoadMonitorLoop) Run(ctx context.Context) {
	ticker := m.cfg.Clock.NewTicker(m.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			m.Tick(ctx)
		}
	}
}

// Tick takes one sample and posts its effects.
func (m *LoadMonitorLoop) Tick(ctx context.Context) {
	sample := m.cfg.Sampler.Sample(ctx)
	if ctx.Err() != nil {
		return
	}
	if !m.cfg.Poster.Post(func() { m.Apply(sample) }) {
		m.log.Debug("dispatcher stopped, dropping sample")
	}
}

// Apply updates the tooltip and the animation interval from sample. It must
// run on the dispatch goroutine.
func (m *LoadMonitorLoop) Apply(sample models.LoadSample) {
	sample = sample.Clamped()
	if m.cfg.Sink != nil {
		m.cfg.Sink.SetTooltip(sample.Tooltip())
		if ls, ok := m.cfg.Sink.(LoadSink); ok {
			ls.SetLoad(sample)
		}
	}
	interval := FrameInterval(sample.CPUPercent, m.cfg.Limit())
	m.log.Debug("cpu %.1f%% -> frame interval %s", sample.CPUPercent, interval)
	m.cfg.Target.SetInterval(interval)
}
