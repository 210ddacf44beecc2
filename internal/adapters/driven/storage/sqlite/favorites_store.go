package sqlite

import (
	"context"
	"database/sql"
	"io"

	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/export"
	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
)

// favoriteStore implements driven.FavoriteStore.
type favoriteStore struct {
	store *Store
}

var _ driven.FavoriteStore = (*favoriteStore)(nil)

// Upsert stores a favorite, replacing every field of an existing row.
// The replaced row gets a new rowid, so a re-save sorts ahead of rows
// saved at the same instant.
func (s *favoriteStore) Upsert(ctx context.Context, pet domain.Pet) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO favorites (id, name, type, breed, age, contact, photo_url, phone, gender, size, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, pet.ID, pet.Name, nullString(pet.Type), nullString(pet.Breed), nullString(pet.Age),
		nullString(pet.Contact), nullString(pet.PhotoURL), nullString(pet.Phone),
		nullString(pet.Gender), nullString(pet.Size), nullString(pet.Description),
		formatTimestamp(s.store.now()))

	if err != nil {
		return storageErr("saving favorite", err)
	}
	return nil
}

// List returns all favorites, most recently saved first.
func (s *favoriteStore) List(ctx context.Context) ([]domain.Favorite, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, type, breed, age, contact, photo_url, phone, gender, size, description, created_at
		FROM favorites
		ORDER BY `+orderNewestFirst+`, rowid DESC
	`)
	if err != nil {
		return nil, storageErr("querying favorites", err)
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, storageErr("scanning favorite", err)
		}
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating favorites", err)
	}
	return favorites, nil
}

// Delete removes a favorite. Missing IDs are not an error.
func (s *favoriteStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM favorites WHERE id = ?", id)
	if err != nil {
		return storageErr("deleting favorite", err)
	}
	return nil
}

// ExportCSV writes all favorites as CSV, in List order. The header row is
// written even when there are no favorites.
func (s *favoriteStore) ExportCSV(ctx context.Context, w io.Writer) error {
	favorites, err := s.List(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteFavoritesCSV(w, favorites); err != nil {
		return storageErr("exporting favorites", err)
	}
	return nil
}

func scanFavorite(rows *sql.Rows) (domain.Favorite, error) {
	var fav domain.Favorite
	var name, petType, breed, age, contact, photoURL, phone, gender, size, description sql.NullString
	var createdAt sql.NullString

	if err := rows.Scan(&fav.ID, &name, &petType, &breed, &age, &contact, &photoURL,
		&phone, &gender, &size, &description, &createdAt); err != nil {
		return domain.Favorite{}, err
	}

	fav.Name = name.String
	fav.Type = petType.String
	fav.Breed = breed.String
	fav.Age = age.String
	fav.Contact = contact.String
	fav.PhotoURL = photoURL.String
	fav.Phone = phone.String
	fav.Gender = gender.String
	fav.Size = size.String
	fav.Description = description.String
	fav.CreatedAt = parseTimestamp(createdAt)

	return fav, nil
}
