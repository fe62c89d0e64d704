package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// NameDB provides SQLite-based storage for resolved ASN names.
//
// Design decision: We use a single database file shared by all runs rather
// than a per-run file. The cache exists to carry resolutions across runs;
// per-run files would defeat that.
type NameDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures NameDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a NameDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*NameDB, error) {
	dbPath := filepath.Join(dbDir, "congestionscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection is enough for
	// the strictly sequential lookups this tool performs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ndb := &NameDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := ndb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return ndb, nil
}

// Close closes the database connection.
func (ndb *NameDB) Close() error {
	return ndb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (ndb *NameDB) createTables() error {
	schema := `
	-- Resolved ASN display names, memoized across runs
	CREATE TABLE IF NOT EXISTS asn_names (
		asn TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		resolved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := ndb.db.ExecContext(context.Background(), schema)
	return err
}

// LookupName returns the cached display name for an ASN.
// The second return value reports whether the ASN was present in the cache.
func (ndb *NameDB) LookupName(ctx context.Context, asn string) (string, bool, error) {
	var name string
	err := ndb.db.QueryRowContext(ctx,
		"SELECT name FROM asn_names WHERE asn = ?", asn,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up ASN %s: %w", asn, err)
	}
	return name, true, nil
}

// SaveName stores or refreshes the display name for an ASN.
func (ndb *NameDB) SaveName(ctx context.Context, asn, name string) error {
	_, err := ndb.db.ExecContext(ctx, `
	INSERT INTO asn_names (asn, name)
	VALUES (?, ?)
	ON CONFLICT(asn) DO UPDATE SET
		name = excluded.name,
		resolved_at = CURRENT_TIMESTAMP
	`, asn, name)
	if err != nil {
		return fmt.Errorf("failed to save name for ASN %s: %w", asn, err)
	}
	return nil
}
