package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every startup. Statements must be
// idempotent (CREATE ... IF NOT EXISTS) since there is no version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		username     TEXT,
		task         TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		date         TEXT,
		time         TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_username ON sessions(username)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		username   TEXT NOT NULL,
		user_group TEXT
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
