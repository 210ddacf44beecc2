package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

var (
	favoritePet        domain.Pet
	favoriteFromSearch bool
	favoriteLocation   string
	favoritePage       int
	favoriteJSON       bool
	favoriteOutput     string
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Manage favorite pets",
	Long:    `Save, list, remove and export the pets kept in the local favorites database.`,
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a pet to favorites",
	Long: `Save a pet to favorites. Saving an ID that is already a favorite
replaces every stored field and moves it to the top of the list.

With --from-search the pet is looked up by --id in a search filtered by
--type, --location and --page, and saved with every field the listing
carries. The other field flags are ignored in that mode.`,
	Args: cobra.NoArgs,
	RunE: runFavoriteAdd,
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, most recently saved first",
	Args:  cobra.NoArgs,
	RunE:  runFavoriteList,
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a pet from favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoriteRemove,
}

var favoriteExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export favorites as CSV",
	Long:  `Write all favorites as CSV to standard output or to the file given with --output.`,
	Args:  cobra.NoArgs,
	RunE:  runFavoriteExport,
}

func init() {
	f := favoriteAddCmd.Flags()
	f.StringVar(&favoritePet.ID, "id", "", "listing identifier (required)")
	f.StringVar(&favoritePet.Name, "name", "", "pet name (required)")
	f.StringVar(&favoritePet.Type, "type", "", "species")
	f.StringVar(&favoritePet.Breed, "breed", "", "primary breed")
	f.StringVar(&favoritePet.Age, "age", "", "age group")
	f.StringVar(&favoritePet.Contact, "contact", "", "shelter contact email")
	f.StringVar(&favoritePet.PhotoURL, "photo-url", "", "photo URL")
	f.StringVar(&favoritePet.Phone, "phone", "", "shelter phone number")
	f.StringVar(&favoritePet.Gender, "gender", "", "gender")
	f.StringVar(&favoritePet.Size, "size", "", "size")
	f.StringVar(&favoritePet.Description, "description", "", "free-text description")
	f.BoolVar(&favoriteFromSearch, "from-search", false, "save the listing with this --id from a search")
	f.StringVar(&favoriteLocation, "location", "", "search location for --from-search")
	f.IntVar(&favoritePage, "page", 1, "search page for --from-search")

	favoriteListCmd.Flags().BoolVar(&favoriteJSON, "json", false, "output favorites as JSON")
	favoriteExportCmd.Flags().StringVarP(&favoriteOutput, "output", "o", "", "write CSV to this file")

	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteExportCmd)
	rootCmd.AddCommand(favoriteCmd)
}

func runFavoriteAdd(cmd *cobra.Command, _ []string) error {
	if favoriteService == nil {
		return errors.New("favorite service not configured")
	}

	pet := favoritePet
	if favoriteFromSearch {
		found, err := findSearchResult(cmd, favoritePet.ID)
		if err != nil {
			return err
		}
		pet = found
	}

	if err := favoriteService.Save(cmd.Context(), pet); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}

	cmd.Printf("Saved %s to favorites.\n", pet.Name)
	return nil
}

// findSearchResult runs the search described by the add flags and returns
// the listing with the given ID.
func findSearchResult(cmd *cobra.Command, id string) (domain.Pet, error) {
	if petService == nil {
		return domain.Pet{}, errors.New("pet service not configured")
	}
	if id == "" {
		return domain.Pet{}, fmt.Errorf("--id is required with --from-search: %w", domain.ErrInvalidInput)
	}

	page := petService.Search(cmd.Context(), domain.SearchQuery{
		Type:     favoritePet.Type,
		Location: favoriteLocation,
		Page:     favoritePage,
		PageSize: domain.MaxPageSize,
	})
	for _, p := range page.Items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Pet{}, fmt.Errorf("pet %s not in search results: %w", id, domain.ErrNotFound)
}

func runFavoriteList(cmd *cobra.Command, _ []string) error {
	if favoriteService == nil {
		return errors.New("favorite service not configured")
	}

	favorites, err := favoriteService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}

	if favoriteJSON {
		return outputJSON(cmd, favorites)
	}

	if len(favorites) == 0 {
		cmd.Println("No favorites saved.")
		return nil
	}

	cmd.Printf("Favorites (%d):\n", len(favorites))
	cmd.Println()
	for i := range favorites {
		printPet(cmd, i+1, favorites[i].Pet)
	}
	return nil
}

func runFavoriteRemove(cmd *cobra.Command, args []string) error {
	if favoriteService == nil {
		return errors.New("favorite service not configured")
	}

	if err := favoriteService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	cmd.Printf("Removed %s from favorites.\n", args[0])
	return nil
}

func runFavoriteExport(cmd *cobra.Command, _ []string) error {
	if favoriteService == nil {
		return errors.New("favorite service not configured")
	}

	if favoriteOutput == "" {
		if err := favoriteService.Export(cmd.Context(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to export favorites: %w", err)
		}
		return nil
	}

	if err := exportToFile(cmd, favoriteOutput); err != nil {
		return err
	}
	cmd.Printf("Exported favorites to %s\n", favoriteOutput)
	return nil
}

// exportToFile writes the CSV export to a temporary file next to path and
// renames it into place, so a failed export leaves any existing file intact.
func exportToFile(cmd *cobra.Command, path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = favoriteService.Export(cmd.Context(), tmp); err != nil {
		return fmt.Errorf("failed to export favorites: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
