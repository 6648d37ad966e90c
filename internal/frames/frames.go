// Package frames resolves the icon sequence animated for a character and theme.
package frames

import (
	"fmt"
	"strings"

	"github.com/watchfire-io/runcat/internal/models"
)

// Frame is one icon of an animation.
type Frame struct {
	Name string // e.g. "dark_cat_0"
	PNG  []byte // source image
	Icon []byte // bytes handed to the tray (PNG, or ICO on windows)
}

// FrameSet is the ordered frames for one character in one concrete theme.
type FrameSet struct {
	Character models.Character
	Theme     models.Theme
	Frames    []Frame
}

// Len returns the number of frames.
func (s FrameSet) Len() int {
	return len(s.Frames)
}

// Empty reports whether the set has no frames.
func (s FrameSet) Empty() bool {
	return len(s.Frames) == 0
}

// FrameName builds the lookup key for one frame.
func FrameName(theme models.Theme, character models.Character, index int) string {
	return strings.ToLower(fmt.Sprintf("%s_%s_%d", theme, character, index))
}
