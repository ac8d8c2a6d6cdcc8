package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/maskfield/internal/app"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	return SetupCLITestWithConfig(t, config.Default())
}

// SetupCLITestWithConfig is SetupCLITest with a caller-supplied config
func SetupCLITestWithConfig(t *testing.T, cfg *config.Config) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, cfg)
}

// CreateTestEntry wraps testutil.CreateTestEntry for CLI tests
func CreateTestEntry(t *testing.T, db *sql.DB, preset, logical, display string, complete bool) int {
	t.Helper()
	return testutil.CreateTestEntry(t, db, preset, logical, display, complete)
}
