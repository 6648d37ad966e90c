//go:build !unix && !windows

package config

func processAlive(pid int) bool {
	return false
}

func lockProcess() (release func(), held bool) {
	return func() {}, false
}
