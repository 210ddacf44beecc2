package sqlite

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Append records one search. Empty filters are stored as NULL.
func (s *historyStore) Append(ctx context.Context, query domain.SearchQuery) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO search_history (animal_type, location, age, size, breed, gender, per_page, page, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, nullString(query.Type), nullString(query.Location), nullString(query.Age),
		nullString(query.Size), nullString(query.Breed), nullString(query.Gender),
		query.PageSize, query.Page, formatTimestamp(s.store.now()))

	if err != nil {
		return storageErr("appending search history", err)
	}
	return nil
}

// List returns up to limit entries, most recent first.
// A non-positive limit falls back to domain.DefaultHistoryLimit.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, animal_type, location, age, size, breed, gender, per_page, page, created_at
		FROM search_history
		ORDER BY `+orderNewestFirst+`, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageErr("querying search history", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		var animalType, location, age, size, breed, gender, createdAt sql.NullString
		var perPage, page sql.NullInt64

		if err := rows.Scan(&e.ID, &animalType, &location, &age, &size, &breed, &gender,
			&perPage, &page, &createdAt); err != nil {
			return nil, storageErr("scanning search history", err)
		}

		e.Type = animalType.String
		e.Location = location.String
		e.Age = age.String
		e.Size = size.String
		e.Breed = breed.String
		e.Gender = gender.String
		e.PageSize = int(perPage.Int64)
		e.Page = int(page.Int64)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating search history", err)
	}
	return entries, nil
}

// Clear removes all history entries.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return storageErr("clearing search history", err)
	}
	return nil
}
