package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrStorageUnavailable marks failures to reach the local database (file
// locked, directory not writable, corrupt store). Callers check it with
// errors.Is.
var ErrStorageUnavailable = errors.New("storage unavailable")

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// DefaultDBPath returns the default database path (~/.duetask/tasks.db)
func DefaultDBPath() (string, error) {
	if env := os.Getenv("DUETASK_DB"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".duetask", "tasks.db"), nil
}

// Open opens or creates the SQLite database
func Open(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %v", ErrStorageUnavailable, err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrStorageUnavailable, err)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to connect to database: %v", ErrStorageUnavailable, err)
	}

	db := &DB{DB: sqlDB}

	// Run migrations
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenDefault opens the database at the default path
func OpenDefault() (*DB, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}
