//go:build windows

package config

import (
	"golang.org/x/sys/windows"
)

// instanceMutex is the session-wide mutex a running tray owns.
const instanceMutex = "_RUNCAT_MUTEX"

// stillActive is the exit code GetExitCodeProcess reports for a live process.
const stillActive = 259

func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(h)

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == stillActive
}

// lockProcess creates the named mutex. held is true when another process
// already created it. The mutex lives until its last handle is closed.
func lockProcess() (release func(), held bool) {
	name, err := windows.UTF16PtrFromString(instanceMutex)
	if err != nil {
		return func() {}, false
	}
	h, err := windows.CreateMutex(nil, false, name)
	if err == windows.ERROR_ALREADY_EXISTS {
		if h != 0 {
			windows.CloseHandle(h)
		}
		return func() {}, true
	}
	if err != nil {
		return func() {}, false
	}
	return func() { windows.CloseHandle(h) }, false
}
