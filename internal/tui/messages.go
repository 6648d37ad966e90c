package tui

import (
	"github.com/watchfire-io/runcat/internal/engine"
	"github.com/watchfire-io/runcat/internal/frames"
	"github.com/watchfire-io/runcat/internal/models"
)

// FrameMsg carries the frame the engine just displayed.
type FrameMsg struct {
	Frame frames.Frame
}

// TooltipMsg carries the tray tooltip text.
type TooltipMsg struct {
	Text string
}

// LoadMsg carries a load sample.
type LoadMsg struct {
	Sample models.LoadSample
}

// PreferencesMsg carries an accepted preference change.
type PreferencesMsg struct {
	Notification engine.Notification
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}
