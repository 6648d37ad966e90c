// Package main is the entry point for the runcat tray app and CLI.
package main

import (
	"os"

	"github.com/watchfire-io/runcat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
