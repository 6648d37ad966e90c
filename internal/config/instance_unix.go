//go:build unix

package config

import "golang.org/x/sys/unix"

// processAlive sends signal 0 to pid. EPERM means the process exists
// but belongs to another user.
func processAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}

// lockProcess has no OS lock here; instance.yaml is the lock.
func lockProcess() (release func(), held bool) {
	return func() {}, false
}
