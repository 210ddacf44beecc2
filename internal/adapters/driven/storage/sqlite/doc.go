// Package sqlite provides the SQLite-based implementation of the favorites
// and search-history stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements two store interfaces
// over a single database handle:
//
//   - FavoriteStore: Bookmarked pets, upsert by ID, CSV export
//   - HistoryStore: Append-only search history
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory and tracked in the schema_migrations table. After
// migrations run, every table is reconciled against its expected column list
// so databases created by older releases gain missing columns without data loss.
//
// # Data Location
//
// By default, the database is stored at ~/.pawprint/data/pets.db
//
// # Thread Safety
//
// All operations are thread-safe. Each call uses its own pooled connection;
// writers are serialized by SQLite itself in WAL mode with a busy timeout.
package sqlite
