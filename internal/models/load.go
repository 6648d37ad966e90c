package models

import (
	"fmt"
	"math"
)

// LoadSample is one reading of system load, each value in [0,100].
type LoadSample struct {
	CPUPercent      float64
	RAMPercent      float64
	DiskUsedPercent float64
}

// Tooltip renders the sample the way the tray tooltip shows it.
func (s LoadSample) Tooltip() string {
	return fmt.Sprintf("CPU: %.1f%%\nRAM: %.1f%%\nStorage: %.1f%% used",
		s.CPUPercent, s.RAMPercent, s.DiskUsedPercent)
}

// Clamped returns a copy with every value forced into [0,100].
func (s LoadSample) Clamped() LoadSample {
	return LoadSample{
		CPUPercent:      ClampPercent(s.CPUPercent),
		RAMPercent:      ClampPercent(s.RAMPercent),
		DiskUsedPercent: ClampPercent(s.DiskUsedPercent),
	}
}

// ClampPercent forces v into [0,100]. NaN becomes 0.
func ClampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
