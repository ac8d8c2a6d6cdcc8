package database

import (
	"context"
	"database/sql"
)

// Migrate creates the database schema if needed
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			mask TEXT NOT NULL,
			placeholder TEXT NOT NULL,
			logical_text TEXT NOT NULL,
			display_text TEXT NOT NULL,
			complete INTEGER NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create index for per-preset listing
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_entries_preset
		ON entries(preset, id)
	`)
	return err
}
