// Package app wires configuration, storage and services into one container.
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/database"
	entryservice "github.com/thenoetrevino/maskfield/internal/services/entry"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB

	Config *config.Config
	Logger *slog.Logger

	// Service layer (business logic)
	EntryService entryservice.Service
}

// New creates a new App with all services initialized.
// A nil cfg uses config.Default().
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		repo:         repo,
		db:           db,
		Config:       cfg,
		Logger:       options.logger,
		EntryService: entryservice.NewService(repo, cfg, options.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
