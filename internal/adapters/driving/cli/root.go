// Package cli provides the pawprint command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pawprint/internal/core/ports/driving"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// version is set at build time or by SetVersion.
var version = "dev"

// Services injected by main. Commands check for nil before use.
var (
	petService      driving.PetSearchService
	favoriteService driving.FavoriteService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pawprint",
	Short: "Browse adoptable pets and keep a list of favorites",
	Long: `pawprint searches adoptable pet listings and keeps the ones you like
in a local favorites database.

Without listing service credentials it runs on a small built-in sample
catalog. Configure credentials with "pawprint config credentials" or the
PETFINDER_API_KEY and PETFINDER_API_SECRET environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services holds the driving ports the commands run against.
type Services struct {
	Pets      driving.PetSearchService
	Favorites driving.FavoriteService
	History   driving.HistoryService
	Settings  driving.SettingsService
}

// SetServices injects the services used by every command.
func SetServices(s Services) {
	petService = s.Pets
	favoriteService = s.Favorites
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
