package models

import (
	"time"

	"github.com/google/uuid"
)

// InstanceInfo records the running tray process.
// This corresponds to ~/.runcat/instance.yaml.
type InstanceInfo struct {
	Version   int       `yaml:"version"`
	SessionID string    `yaml:"session_id"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(pid int) *InstanceInfo {
	return &InstanceInfo{
		Version:   1,
		SessionID: uuid.New().String(),
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
