package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change pawprint configuration.

Settings are read from the config file and may be overridden by the
environment (PETFINDER_API_KEY, PETFINDER_API_SECRET, PETFINDER_BASE_URL,
PETFINDER_TIMEOUT_SECONDS, PETS_DB_PATH) or a .env file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a single configuration value in the config file.

Available keys:
  petfinder.api_key          listing service client ID
  petfinder.api_secret       listing service client secret
  petfinder.base_url         listing API root
  petfinder.timeout_seconds  per-request timeout in seconds
  storage.db_path            favorites database file
  history.limit              default number of history entries listed`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configCredentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Store listing service credentials",
	Long: `Prompt for the listing service client ID and secret and store them in
the config file. The secret is read without echo when run in a terminal.`,
	Args: cobra.NoArgs,
	RunE: runConfigCredentials,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configCredentialsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Listing Service]")
	mode := "offline (sample catalog)"
	if settings.HasCredentials() {
		mode = "live"
	}
	cmd.Printf("  Mode: %s\n", mode)
	cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	if settings.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.APISecret != "" {
		cmd.Printf("  API Secret: %s\n", maskAPIKey(settings.APISecret))
	} else {
		cmd.Printf("  API Secret: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.Timeout)
	cmd.Println()

	cmd.Println("[Storage]")
	dbPath := settings.DBPath
	if dbPath == "" {
		dbPath = "(default)"
	}
	cmd.Printf("  Database: %s\n", dbPath)
	cmd.Printf("  History limit: %d\n", settings.HistoryLimit)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigCredentials(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Print("Enter API key: ")
	apiKey := readLine(reader)
	if apiKey == "" {
		return errors.New("API key is required")
	}

	cmd.Print("Enter API secret: ")
	apiSecret := readPassword(cmd.InOrStdin(), reader)
	cmd.Println()
	if apiSecret == "" {
		return errors.New("API secret is required")
	}

	if err := settingsService.SetCredentials(apiKey, apiSecret); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	cmd.Println("Credentials saved. Searches now use the live listing service.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads without echo when in is the terminal's stdin,
// otherwise it falls back to a plain line read from reader.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
