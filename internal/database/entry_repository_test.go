package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/maskfield/internal/models"
)

func newEntry(preset, logical, display string, complete bool) *models.Entry {
	return &models.Entry{
		Preset:      preset,
		Mask:        "(###) ###-####",
		Placeholder: "_",
		LogicalText: logical,
		DisplayText: display,
		Complete:    complete,
	}
}

func TestEntryRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.CreateEntry(ctx, newEntry("phone", "5551234567", "(555) 123-4567", true))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetEntryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "phone", got.Preset)
	assert.Equal(t, "5551234567", got.LogicalText)
	assert.Equal(t, "(555) 123-4567", got.DisplayText)
	assert.True(t, got.Complete)
	assert.Empty(t, got.Note)
}

func TestEntryRepo_GetMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetEntryByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntryRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	first, err := repo.CreateEntry(ctx, newEntry("phone", "555", "(555) ___-____", false))
	require.NoError(t, err)
	_, err = repo.CreateEntry(ctx, newEntry("zip", "12345", "12345", true))
	require.NoError(t, err)
	last, err := repo.CreateEntry(ctx, newEntry("phone", "5551234567", "(555) 123-4567", true))
	require.NoError(t, err)

	t.Run("all newest first", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, last.ID, entries[0].ID)
	})

	t.Run("filtered by preset", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "phone", 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, last.ID, entries[0].ID)
		assert.Equal(t, first.ID, entries[1].ID)
		assert.False(t, entries[1].Complete)
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "", 1)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "mac", 0)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestEntryRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.CreateEntry(ctx, newEntry("zip", "12345", "12345", true))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntry(ctx, created.ID))

	_, err = repo.GetEntryByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, repo.DeleteEntry(ctx, created.ID), ErrEntryNotFound)
}

func TestOpen_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "entries.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	created, err := NewRepository(db).CreateEntry(ctx, newEntry("zip", "90210", "90210", true))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, err := NewRepository(db).GetEntryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "90210", got.DisplayText)
}
