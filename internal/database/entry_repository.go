package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/maskfield/internal/models"
)

// ErrEntryNotFound is returned when no entry has the requested ID
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepo handles all entry-related database operations.
type EntryRepo struct {
	db *sql.DB
}

const entryColumns = `id, preset, mask, placeholder, logical_text, display_text, complete, note, created_at`

// Create inserts an entry and returns it with its ID and timestamp
func (r *EntryRepo) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	var created *models.Entry
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO entries (preset, mask, placeholder, logical_text, display_text, complete, note)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.Preset, e.Mask, e.Placeholder, e.LogicalText, e.DisplayText, e.Complete, e.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry for preset '%s': %w", e.Preset, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get entry ID after insert: %w", err)
		}

		created, err = scanEntry(tx.QueryRowContext(ctx,
			`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a single entry
func (r *EntryRepo) GetByID(ctx context.Context, id int) (*models.Entry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}
	return e, nil
}

// List returns entries newest first. An empty preset lists every entry.
func (r *EntryRepo) List(ctx context.Context, preset string, limit int) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	args := []any{}
	if preset != "" {
		query += ` WHERE preset = ?`
		args = append(args, preset)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes an entry
func (r *EntryRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var e models.Entry
	err := row.Scan(
		&e.ID, &e.Preset, &e.Mask, &e.Placeholder,
		&e.LogicalText, &e.DisplayText, &e.Complete, &e.Note, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
