// Package sampler reads processor, memory and storage load through gopsutil
// and normalizes each to a 0-100 percentage.
package sampler

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// ReadFunc reads one raw percentage from a sensor.
type ReadFunc func(ctx context.Context) (float64, error)

// Readers are the three sensors behind a Sampler.
type Readers struct {
	CPU         ReadFunc // processor utilization, percent
	Memory      ReadFunc // memory in use, percent
	StorageFree ReadFunc // free space on the system volume, percent
}

// Config controls which volume is sampled.
type Config struct {
	// Volume is the mount point or drive root used for storage load.
	// Only one volume is sampled.
	Volume string
}

// DefaultConfig samples the system volume.
func DefaultConfig() Config {
	return Config{Volume: SystemVolume()}
}

// SystemVolume returns the boot volume: the system drive root on Windows,
// "/" elsewhere.
func SystemVolume() string {
	if runtime.GOOS == "windows" {
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return drive + `\`
	}
	return "/"
}

// Sampler produces LoadSamples. When a sensor fails, the last known value
// (0 before the first success) is reported instead.
type Sampler struct {
	readers Readers
	log     logger.Logger

	mu    sync.Mutex
	ready bool
	last  models.LoadSample
}

// New creates a Sampler backed by gopsutil.
func New(cfg Config, log logger.Logger) *Sampler {
	if cfg.Volume == "" {
		cfg.Volume = SystemVolume()
	}
	return NewWithReaders(Readers{
		CPU:         cpuPercent,
		Memory:      memoryUsedPercent,
		StorageFree: storageFreePercent(cfg.Volume),
	}, log)
}

// NewWithReaders creates a Sampler over arbitrary sensors.
func NewWithReaders(r Readers, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{readers: r, log: log}
}

// WarmUp performs the initial CPU and memory reads and discards them.
// The first reading of a delta-based counter is meaningless.
func (s *Sampler) WarmUp(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warmUpLocked(ctx)
}

func (s *Sampler) warmUpLocked(ctx context.Context) {
	_, _ = s.readers.CPU(ctx)
	_, _ = s.readers.Memory(ctx)
	s.ready = true
}

// warmedUp reports whether the warm-up read has happened.
func (s *Sampler) warmedUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Sample reads all three sensors. It never fails.
func (s *Sampler) Sample(ctx context.Context) models.LoadSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		s.warmUpLocked(ctx)
	}

	next := s.last
	if v, ok := s.read(ctx, "cpu", s.readers.CPU); ok {
		next.CPUPercent = v
	}
	if v, ok := s.read(ctx, "memory", s.readers.Memory); ok {
		next.RAMPercent = v
	}
	if v, ok := s.read(ctx, "storage", s.readers.StorageFree); ok {
		next.DiskUsedPercent = 100 - models.ClampPercent(v)
	}

	s.last = next.Clamped()
	return s.last
}

func (s *Sampler) read(ctx context.Context, name string, fn ReadFunc) (float64, bool) {
	v, err := fn(ctx)
	if err != nil {
		s.log.Warn("%v", rcerrors.SensorUnavailable(name, err))
		return 0, false
	}
	return v, true
}

func cpuPercent(ctx context.Context) (float64, error) {
	// interval 0 compares against the previous call
	v, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, fmt.Errorf("no cpu readings")
	}
	return v[0], nil
}

func memoryUsedPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if vm.Total == 0 {
		return 0, fmt.Errorf("total memory reported as zero")
	}
	total := float64(vm.Total)
	return (total - float64(vm.Available)) / total * 100, nil
}

func storageFreePercent(volume string) ReadFunc {
	return func(ctx context.Context) (float64, error) {
		u, err := disk.UsageWithContext(ctx, volume)
		if err != nil {
			return 0, err
		}
		if u.Total == 0 {
			return 0, fmt.Errorf("volume %s reports zero size", volume)
		}
		return float64(u.Free) / float64(u.Total) * 100, nil
	}
}
