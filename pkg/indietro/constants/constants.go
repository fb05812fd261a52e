// Package constants defines shared constants and environment variable names
// used throughout the indietro back-navigation library.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar enables debug logging for the library internals when set.
const DebugEnvVar = "INDIETRO_DEBUG"

// BindingConfigEnvVar overrides the path of the platform binding config file.
const BindingConfigEnvVar = "INDIETRO_BINDING_CONFIG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default input device values for handheld Linux devices. Most custom
// firmwares expose the dedicated back button on the first event device
// as KEY_BACK; a few map it to KEY_ESC.
const (
	DefaultBackDevicePath = "/dev/input/event1"
	DefaultBackButtonCode = 158 // KEY_BACK
)

// DefaultCoolDown is the minimum interval between two hardware back
// signals. Cheap membrane buttons bounce; anything inside this window is
// treated as the same press.
const DefaultCoolDown = 200 * time.Millisecond
