package database

import (
	"context"

	"github.com/thenoetrevino/maskfield/internal/models"
)

// EntryReader defines read operations for entries.
type EntryReader interface {
	GetEntryByID(ctx context.Context, id int) (*models.Entry, error)
	ListEntries(ctx context.Context, preset string, limit int) ([]*models.Entry, error)
}

// EntryWriter defines write operations for entries.
type EntryWriter interface {
	CreateEntry(ctx context.Context, e *models.Entry) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// EntryRepository combines all entry-related operations.
type EntryRepository interface {
	EntryReader
	EntryWriter
}
