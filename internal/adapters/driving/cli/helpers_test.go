package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/config/env"
	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pawprint/internal/connectors/petfinder"
	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/services"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// testServices exposes the stores behind the injected services.
type testServices struct {
	favorites *memory.FavoriteStore
	history   *memory.HistoryStore
	config    *memory.ConfigStore
}

// setupTestServices wires real services over in-memory stores and an
// offline pet source, restoring the previous services on cleanup.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	prev := Services{
		Pets:      petService,
		Favorites: favoriteService,
		History:   historyService,
		Settings:  settingsService,
	}

	ts := &testServices{
		favorites: memory.NewFavoriteStore(),
		history:   memory.NewHistoryStore(),
		config:    memory.NewConfigStore(),
	}

	source := petfinder.New(petfinder.Config{})
	SetServices(Services{
		Pets:      services.NewPetService(source, ts.history),
		Favorites: services.NewFavoriteService(ts.favorites),
		History:   services.NewHistoryService(ts.history, domain.DefaultHistoryLimit),
		Settings:  services.NewSettingsService(ts.config, env.NewOverlayFromMap(nil)),
	})

	t.Cleanup(func() {
		SetServices(prev)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return ts
}

// runCommand executes rootCmd with args and returns combined output.
// Flag values are reset afterwards so commands do not leak state.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
