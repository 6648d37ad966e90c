package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// LinuxSystemMonitors are tried in order on Linux.
var LinuxSystemMonitors = []string{
	"gnome-system-monitor",
	"plasma-systemmonitor",
	"ksysguard",
	"xfce4-taskmanager",
	"mate-system-monitor",
	"lxtask",
}

// SystemMonitorCommand returns the command that opens the OS task manager.
// lookPath reports whether a binary is installed.
func SystemMonitorCommand(goos string, lookPath func(string) bool) ([]string, error) {
	switch goos {
	case OSWindows:
		return []string{"taskmgr.exe"}, nil
	case OSDarwin:
		return []string{"open", "-a", "Activity Monitor"}, nil
	case OSLinux:
		for _, name := range LinuxSystemMonitors {
			if lookPath(name) {
				return []string{name}, nil
			}
		}
		return nil, fmt.Errorf("no system monitor found (tried %v)", LinuxSystemMonitors)
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenSystemMonitor launches the OS task manager without waiting for it.
func OpenSystemMonitor() error {
	argv, err := SystemMonitorCommand(runtime.GOOS, func(name string) bool {
		_, err := exec.LookPath(name)
		return err == nil
	})
	if err != nil {
		return err
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", argv[0], err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
