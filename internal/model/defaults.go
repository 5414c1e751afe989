package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultCooldown       = time.Second
	DefaultWheelThreshold = 50.0
	DefaultWheelDelta     = 100.0
	DefaultSkin           = "default"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)
