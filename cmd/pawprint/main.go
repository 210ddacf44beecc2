// Command pawprint searches adoptable pet listings and manages a local
// favorites database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/config/env"
	"github.com/custodia-labs/pawprint/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pawprint/internal/adapters/driving/cli"
	"github.com/custodia-labs/pawprint/internal/connectors/petfinder"
	"github.com/custodia-labs/pawprint/internal/core/services"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadDotEnv loads .env files into the process environment. A malformed
// file is reported at error level, which is visible without --verbose,
// and startup continues without it.
func loadDotEnv(paths ...string) {
	if err := env.LoadDotEnv(paths...); err != nil {
		logger.Error("could not load .env file", "error", err)
	}
}

func run() error {
	loadDotEnv()

	cfgStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(cfgStore, env.NewOverlay())
	settings := settingsService.Get()

	var store *sqlite.Store
	if settings.DBPath != "" {
		store, err = sqlite.NewStoreAt(settings.DBPath)
	} else {
		store, err = sqlite.NewStore("")
	}
	if err != nil {
		return fmt.Errorf("opening favorites database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing favorites database", "error", err)
		}
	}()

	source := petfinder.New(petfinder.ConfigFromSettings(settings))
	history := store.HistoryStore()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Pets:      services.NewPetService(source, history),
		Favorites: services.NewFavoriteService(store.FavoriteStore()),
		History:   services.NewHistoryService(history, settings.HistoryLimit),
		Settings:  settingsService,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}
