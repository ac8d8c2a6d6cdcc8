package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/maskfield/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestEntry inserts an entry row directly and returns its ID
func CreateTestEntry(t *testing.T, db *sql.DB, preset, logical, display string, complete bool) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO entries (preset, mask, placeholder, logical_text, display_text, complete)
		 VALUES (?, '', '_', ?, ?, ?)`,
		preset, logical, display, complete)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}
