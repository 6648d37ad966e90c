package config

import (
	"fmt"
	"log"
	"os"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/models"
)

// LoadInstanceInfo loads the running instance info from ~/.runcat/instance.yaml.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo() (*models.InstanceInfo, error) {
	path, err := GlobalInstanceFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo saves the instance info to ~/.runcat/instance.yaml.
func SaveInstanceInfo(info *models.InstanceInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveInstanceInfo removes the instance.yaml file.
func RemoveInstanceInfo() error {
	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning checks if another tray process is still alive.
// Returns true if instance.yaml exists and the PID is alive. A file that
// cannot be parsed is left over from a crash and is removed.
func IsInstanceRunning() (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo()
	if err != nil {
		log.Printf("[instance] WARN: discarding unreadable instance file: %v", err)
		if rmErr := RemoveInstanceInfo(); rmErr != nil {
			return false, nil, fmt.Errorf("failed to remove stale instance file: %w", rmErr)
		}
		return false, nil, nil
	}
	if info == nil {
		return false, nil, nil
	}
	if info.PID == os.Getpid() {
		return false, info, nil
	}

	if !processAlive(info.PID) {
		_ = RemoveInstanceInfo()
		return false, info, nil
	}
	return true, info, nil
}

// InstanceLock marks the current process as the running instance until
// Release is called.
type InstanceLock struct {
	Info    *models.InstanceInfo
	release func()
}

// Release drops the OS lock and removes instance.yaml.
func (l *InstanceLock) Release() error {
	if l.release != nil {
		l.release()
		l.release = nil
	}
	return RemoveInstanceInfo()
}

// AcquireInstance records the current process as the running instance.
// It fails with code INSTANCE when another live instance holds the OS
// lock or is recorded in instance.yaml.
func AcquireInstance() (*InstanceLock, error) {
	release, held := lockProcess()
	if held {
		return nil, alreadyRunning("")
	}

	running, existing, err := IsInstanceRunning()
	if err != nil {
		release()
		return nil, err
	}
	if running {
		release()
		return nil, alreadyRunning(fmt.Sprintf(" (PID %d)", existing.PID))
	}

	info := models.NewInstanceInfo(os.Getpid())
	if err := SaveInstanceInfo(info); err != nil {
		release()
		return nil, err
	}
	return &InstanceLock{Info: info, release: release}, nil
}

func alreadyRunning(detail string) error {
	return rcerrors.New(rcerrors.ErrInstance,
		"runcat is already running"+detail,
		"Quit the running instance from its tray menu first")
}
