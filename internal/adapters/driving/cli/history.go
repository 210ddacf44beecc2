package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the search history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every search history entry",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (0 = configured default)")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	for i := range entries {
		e := &entries[i]
		cmd.Printf("  %s  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), describeQuery(e.SearchQuery))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("Search history cleared.")
	return nil
}

// describeQuery renders the non-empty filters of q on one line.
func describeQuery(q domain.SearchQuery) string {
	parts := []string{}
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("type", q.Type)
	add("location", q.Location)
	add("age", q.Age)
	add("breed", q.Breed)
	add("size", q.Size)
	add("gender", q.Gender)

	filters := "all pets"
	if len(parts) > 0 {
		filters = strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s (page %d, %d per page)", filters, q.Page, q.PageSize)
}
