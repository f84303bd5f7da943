package db

import "fmt"

// migrate runs all database migrations
func (db *DB) migrate() error {
	migrations := []string{
		migrationCreateTasks,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}

const migrationCreateTasks = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER UNIQUE PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    datetime_due TEXT
);
`
