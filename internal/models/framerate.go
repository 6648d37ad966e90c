package models

import (
	"fmt"
	"strings"
)

// FrameRateCap limits how fast the animation may run regardless of load.
// Values are ordered from slowest to fastest.
type FrameRateCap int

const (
	FPS10 FrameRateCap = iota
	FPS20
	FPS40
	FPS60
	FPS80
)

// DefaultFrameRateCap is the mid-range cap used when nothing is configured.
const DefaultFrameRateCap = FPS40

var frameRateCaps = [...]struct {
	name string
	rate float64
}{
	{"10fps", 0.25},
	{"20fps", 0.5},
	{"40fps", 1.0},
	{"60fps", 1.5},
	{"80fps", 2.0},
}

// FrameRateCaps returns every cap from slowest to fastest.
func FrameRateCaps() []FrameRateCap {
	out := make([]FrameRateCap, len(frameRateCaps))
	for i := range frameRateCaps {
		out[i] = FrameRateCap(i)
	}
	return out
}

// Valid reports whether f is a known cap.
func (f FrameRateCap) Valid() bool {
	return f >= 0 && int(f) < len(frameRateCaps)
}

func (f FrameRateCap) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FrameRateCap(%d)", int(f))
	}
	return frameRateCaps[f].name
}

// Rate is the speed multiplier applied to the load factor.
func (f FrameRateCap) Rate() float64 {
	if !f.Valid() {
		return frameRateCaps[DefaultFrameRateCap].rate
	}
	return frameRateCaps[f].rate
}

// ParseFrameRateCap accepts "40fps", "40 FPS", "FPS40" or "40".
func ParseFrameRateCap(s string) (FrameRateCap, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	norm = strings.TrimPrefix(norm, "fps")
	norm = strings.TrimSuffix(norm, "fps")
	for i, c := range frameRateCaps {
		if strings.TrimSuffix(c.name, "fps") == norm {
			return FrameRateCap(i), nil
		}
	}
	return DefaultFrameRateCap, fmt.Errorf("unknown frame rate cap %q", s)
}
