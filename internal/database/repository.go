package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/maskfield/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*EntryRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EntryRepo: &EntryRepo{db: db},
	}
}

// Wrapper methods for EntryRepo
func (r *Repository) CreateEntry(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	return r.EntryRepo.Create(ctx, e)
}

func (r *Repository) GetEntryByID(ctx context.Context, id int) (*models.Entry, error) {
	return r.EntryRepo.GetByID(ctx, id)
}

func (r *Repository) ListEntries(ctx context.Context, preset string, limit int) ([]*models.Entry, error) {
	return r.EntryRepo.List(ctx, preset, limit)
}

func (r *Repository) DeleteEntry(ctx context.Context, id int) error {
	return r.EntryRepo.Delete(ctx, id)
}
