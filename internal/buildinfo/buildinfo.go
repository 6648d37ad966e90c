// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Title is the product name and version shown in menus.
func Title() string {
	return fmt.Sprintf("RunCat v%s", Version)
}
