// Package tray implements the animated system tray icon and its menu.
package tray

import (
	"github.com/watchfire-io/runcat/internal/logger"
	"github.com/watchfire-io/runcat/internal/models"
)

// Controller applies menu selections. Calls must not block; the engine
// queues them for its dispatch goroutine.
type Controller interface {
	// Preferences returns the selections to check when the menu is built.
	Preferences() models.Preferences
	SelectCharacter(c models.Character)
	SelectTheme(t models.Theme)
	SelectFrameRateCap(c models.FrameRateCap)
	ToggleStartup()
}

// Options configures the tray.
type Options struct {
	// Title is shown as a disabled menu entry, e.g. "RunCat v1.2.0".
	Title string
	// OnReady runs once the tray exists; start the engine here.
	OnReady func()
	// OnExit runs after the tray has been torn down.
	OnExit func()
	// OnQuit is called when Exit is clicked.
	OnQuit func()
	// OpenSystemMonitor launches the OS task manager.
	OpenSystemMonitor func() error
	Logger            logger.Logger
}
