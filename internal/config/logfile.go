package config

import (
	"fmt"
	"os"
)

// maxLogSize is the size at which the tray log is rotated to runcat.log.1.
const maxLogSize = 1 << 20

// OpenLogFile opens ~/.runcat/runcat.log for appending, rotating it first
// when it has grown past maxLogSize.
func OpenLogFile() (*os.File, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure runcat dir: %w", err)
	}

	path, err := GlobalLogFile()
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
