package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

var (
	searchLocation string
	searchAge      string
	searchBreed    string
	searchSize     string
	searchGender   string
	searchPage     int
	searchLimit    int
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [type]",
	Short: "Search adoptable pets",
	Long: `Searches adoptable pet listings, optionally filtered by animal type
(dog, cat, rabbit, ...) and the filters below.

When the listing service is not configured or cannot be reached, results
come from the built-in sample catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "city, state or postal code")
	searchCmd.Flags().StringVar(&searchAge, "age", "", "age group (baby, young, adult, senior)")
	searchCmd.Flags().StringVar(&searchBreed, "breed", "", "breed name")
	searchCmd.Flags().StringVar(&searchSize, "size", "", "size (small, medium, large, xlarge)")
	searchCmd.Flags().StringVar(&searchGender, "gender", "", "gender (male, female)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultPageSize, "results per page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if petService == nil {
		return errors.New("pet service not configured")
	}

	query := domain.SearchQuery{
		Location: searchLocation,
		Age:      searchAge,
		Breed:    searchBreed,
		Size:     searchSize,
		Gender:   searchGender,
		Page:     searchPage,
		PageSize: searchLimit,
	}
	if len(args) > 0 {
		query.Type = args[0]
	}

	page := petService.Search(cmd.Context(), query)

	if searchJSON {
		return outputJSON(cmd, page)
	}
	outputSearchTable(cmd, page)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, page domain.PetPage) {
	if len(page.Items) == 0 {
		cmd.Println("No pets found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range page.Items {
		printPet(cmd, i+1, page.Items[i])
	}
	cmd.Printf("Page %d of %d (%d results)\n", page.Page, page.TotalPages, page.Count)
}

// printPet prints one numbered pet entry.
func printPet(cmd *cobra.Command, n int, pet domain.Pet) {
	cmd.Printf("  [%d] %s", n, pet.String())
	if pet.Type != "" {
		cmd.Printf(" - %s", pet.Type)
	}
	cmd.Println()
	cmd.Printf("      ID: %s\n", pet.ID)
	if pet.Gender != "" || pet.Size != "" {
		cmd.Printf("      %s\n", joinNonEmpty(pet.Gender, pet.Size))
	}
	if pet.Contact != "" {
		cmd.Printf("      Contact: %s\n", pet.Contact)
	}
	if pet.Phone != "" {
		cmd.Printf("      Phone: %s\n", pet.Phone)
	}
	cmd.Println()
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
