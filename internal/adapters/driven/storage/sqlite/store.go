package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/pawprint/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/core/ports/driven"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "pets.db"

// timestampLayout is fixed-width so that text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqlNowTimestamp renders the current UTC time in timestampLayout inside SQL.
const sqlNowTimestamp = "strftime('%Y-%m-%dT%H:%M:%S.000000000Z', 'now')"

// orderNewestFirst sorts rows by the instant in created_at rather than its
// text, so rows written by CURRENT_TIMESTAMP defaults interleave correctly.
const orderNewestFirst = "julianday(created_at) DESC, created_at DESC"

// Store is a SQLite-based storage that provides access to the favorites
// and search history stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string

	// now assigns created_at timestamps.
	now func() time.Time
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.pawprint/data/pets.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pawprint", "data")
	}
	return NewStoreAt(filepath.Join(dataDir, dbFileName))
}

// NewStoreAt creates a new SQLite store backed by the given database file.
// Missing parent directories are created.
func NewStoreAt(dbPath string) (*Store, error) {
	dbPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("resolving database path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, storageErr("creating data directory", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, storageErr("opening database", err)
	}
	// SQLite allows one writer; a single connection queues concurrent
	// callers in the pool instead of failing them with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: dbPath,
		now:  func() time.Time { return time.Now().UTC() },
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, storageErr("running migrations", err)
	}

	if err := s.reconcileSchema(); err != nil {
		db.Close()
		return nil, storageErr("reconciling schema", err)
	}

	logger.Debug("opened favorites database", "path", dbPath)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FavoriteStore returns a FavoriteStore interface backed by this store.
func (s *Store) FavoriteStore() driven.FavoriteStore {
	return &favoriteStore{store: s}
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations, each in its own transaction.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_favorites.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("applied migration", "file", name)
	}

	return nil
}

func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// reconcileSchema adds every expected column missing from an existing table
// and backfills created_at. It is idempotent and runs on every open.
func (s *Store) reconcileSchema() error {
	for _, t := range expectedSchema {
		present, err := s.columnNames(t.name)
		if err != nil {
			return err
		}

		for _, col := range t.columns {
			if present[col.name] {
				continue
			}
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", t.name, col.name, col.ddl)
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("adding column %s.%s: %w", t.name, col.name, err)
			}
			logger.Info("added missing column", "table", t.name, "column", col.name)
		}

		// ALTER TABLE cannot carry a CURRENT_TIMESTAMP default, so rows from
		// before the column existed are stamped here, in timestampLayout.
		backfill := fmt.Sprintf("UPDATE %s SET created_at = %s WHERE created_at IS NULL", t.name, sqlNowTimestamp)
		if _, err := s.db.Exec(backfill); err != nil {
			return fmt.Errorf("backfilling %s.created_at: %w", t.name, err)
		}
	}
	return nil
}

// columnNames returns the set of columns currently present on table.
func (s *Store) columnNames(table string) (map[string]bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("reading columns of %s: %w", table, err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scanning columns of %s: %w", table, err)
		}
		names[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns of %s: %w", table, err)
	}
	return names, nil
}

// storageErr marks err as a store failure for errors.Is(err, domain.ErrStorage).
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// formatTimestamp renders t in the fixed-width UTC layout used for created_at.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// timestampLayouts are accepted when reading created_at back. The plain
// "2006-01-02 15:04:05" layout covers rows stamped by CURRENT_TIMESTAMP.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp parses a stored created_at value.
// Returns zero time if the value is NULL or in no known layout.
func parseTimestamp(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
