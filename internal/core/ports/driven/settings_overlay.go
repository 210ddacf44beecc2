package driven

import "github.com/custodia-labs/pawprint/internal/core/domain"

// SettingsOverlay layers externally supplied values (e.g. environment
// variables) on top of settings resolved from the config store.
type SettingsOverlay interface {
	// Apply returns base with every override present in the overlay applied.
	Apply(base domain.Settings) domain.Settings
}
