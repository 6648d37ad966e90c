package engine

import (
	"math"
	"time"

	"github.com/watchfire-io/runcat/internal/models"
)

const (
	// BaseFrameInterval is the slowest frame duration, used at idle.
	BaseFrameInterval = 500 * time.Millisecond

	// DefaultFrameInterval is the animation interval before the first sample.
	DefaultFrameInterval = 200 * time.Millisecond

	// DefaultSampleInterval is the load monitor cadence.
	DefaultSampleInterval = 5 * time.Second

	// loadDivisor maps 100% CPU to a load factor of 20.
	loadDivisor = 5.0
)

// FrameInterval maps CPU load and a frame-rate cap to the animation frame
// interval: 500ms / max(1, cpu/5 × rate), truncated to whole milliseconds.
// The result is always in (0, 500ms].
func FrameInterval(cpuPercent float64, limit models.FrameRateCap) time.Duration {
	factor := models.ClampPercent(cpuPercent) / loadDivisor
	speed := math.Max(1.0, factor*limit.Rate())
	ms := int64(float64(BaseFrameInterval/time.Millisecond) / speed)
	return time.Duration(ms) * time.Millisecond
}
