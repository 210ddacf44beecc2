// Package export renders stored favorites into portable file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// Header is the fixed, stable column order of the favorites CSV export.
var Header = []string{
	"id", "name", "type", "breed", "age", "contact",
	"photo_url", "phone", "gender", "size", "description", "created_at",
}

// WriteFavoritesCSV writes favorites as UTF-8 CSV in the given order.
// The header row is written even when favorites is empty.
func WriteFavoritesCSV(w io.Writer, favorites []domain.Favorite) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i := range favorites {
		if err := cw.Write(Record(favorites[i])); err != nil {
			return fmt.Errorf("writing csv row %s: %w", favorites[i].ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Record renders f in Header order. Absent values are empty cells.
func Record(f domain.Favorite) []string {
	created := ""
	if !f.CreatedAt.IsZero() {
		created = f.CreatedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		f.ID, f.Name, f.Type, f.Breed, f.Age, f.Contact,
		f.PhotoURL, f.Phone, f.Gender, f.Size, f.Description, created,
	}
}
