package gamedata

import (
	"time"

	"github.com/swgoh-tools/statcalc/internal/swgoh"
)

// InitializeInput defines the input for preparing the engine
type InitializeInput struct {
	// ForceReload rebuilds the tables even when a prepared engine exists
	ForceReload bool
}

// InitializeOutput defines the output for preparing the engine
type InitializeOutput struct {
	// Version of the snapshot the engine now runs on
	Version *swgoh.DataVersion
	// Updated reports whether tables were rebuilt from upstream data
	Updated bool
}

// RefreshInput defines the input for a staleness check
type RefreshInput struct{}

// RefreshOutput defines the output for a staleness check
type RefreshOutput struct {
	Version *swgoh.DataVersion
	Updated bool
}

// WatchUpdatesInput defines the input for the background refresh loop
type WatchUpdatesInput struct {
	// Interval between refresh checks. Zero uses the configured default;
	// values below MinUpdateInterval are raised to it.
	Interval time.Duration
}

// VersionInput defines the input for reading the active snapshot version
type VersionInput struct{}

// VersionOutput defines the output for reading the active snapshot version
type VersionOutput struct {
	Version *swgoh.DataVersion
}

// LanguagesInput defines the input for listing loaded languages
type LanguagesInput struct{}

// LanguagesOutput defines the output for listing loaded languages
type LanguagesOutput struct {
	Languages []string
}
