// Package entry holds the business rules for saving masked values.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/database"
	"github.com/thenoetrevino/maskfield/internal/mask"
	"github.com/thenoetrevino/maskfield/internal/models"
)

// Service defines all entry-related business operations
type Service interface {
	// Read operations
	GetEntry(ctx context.Context, id int) (*models.Entry, error)
	ListEntries(ctx context.Context, req ListEntriesRequest) ([]*models.Entry, error)

	// Write operations
	SaveEntry(ctx context.Context, req SaveEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// SaveEntryRequest encapsulates data for saving a masked value.
// Text is logical text; it is re-validated against the preset's mask before storing.
type SaveEntryRequest struct {
	Preset       string
	Text         string
	Note         string
	AllowPartial bool
}

// ListEntriesRequest filters a listing. Zero values list everything.
type ListEntriesRequest struct {
	Preset string
	Limit  int
}

// repository defines the data access methods needed by the entry service
// This interface is private to the service layer
type repository interface {
	CreateEntry(ctx context.Context, e *models.Entry) (*models.Entry, error)
	GetEntryByID(ctx context.Context, id int) (*models.Entry, error)
	ListEntries(ctx context.Context, preset string, limit int) ([]*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// presetSource resolves preset names; *config.Config satisfies it
type presetSource interface {
	Preset(name string) (config.Preset, error)
	PresetPlaceholder(p config.Preset) rune
}

// service implements Service interface with private repository
type service struct {
	repo    repository
	presets presetSource
	logger  *slog.Logger
}

// NewService creates a new entry service. A nil logger uses slog.Default().
func NewService(repo repository, presets presetSource, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:    repo,
		presets: presets,
		logger:  logger,
	}
}

// GetEntry retrieves a specific entry
func (s *service) GetEntry(ctx context.Context, id int) (*models.Entry, error) {
	if id <= 0 {
		return nil, ErrInvalidEntryID
	}
	e, err := s.repo.GetEntryByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return e, nil
}

// ListEntries retrieves entries newest first
func (s *service) ListEntries(ctx context.Context, req ListEntriesRequest) ([]*models.Entry, error) {
	return s.repo.ListEntries(ctx, req.Preset, req.Limit)
}

// SaveEntry runs req.Text through a fresh engine for the preset's mask and stores the result
func (s *service) SaveEntry(ctx context.Context, req SaveEntryRequest) (*models.Entry, error) {
	if req.Preset == "" {
		return nil, ErrEmptyPreset
	}

	preset, err := s.presets.Preset(req.Preset)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, req.Preset)
	}

	placeholder := s.presets.PresetPlaceholder(preset)
	engine, err := mask.New(preset.Mask,
		mask.WithPlaceholder(placeholder),
		mask.WithText(req.Text),
		mask.WithLogger(s.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", req.Preset, err)
	}

	if !engine.IsComplete() && !req.AllowPartial {
		return nil, fmt.Errorf("%w: %s holds %d of %d characters",
			ErrIncompleteValue, req.Preset, len([]rune(engine.LogicalText())), engine.Capacity())
	}

	created, err := s.repo.CreateEntry(ctx, &models.Entry{
		Preset:      req.Preset,
		Mask:        engine.Mask(),
		Placeholder: string(engine.Placeholder()),
		LogicalText: engine.LogicalText(),
		DisplayText: engine.DisplayText(),
		Complete:    engine.IsComplete(),
		Note:        req.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.logger.Debug("entry saved", "id", created.ID, "preset", created.Preset, "complete", created.Complete)
	return created, nil
}

// DeleteEntry removes an entry
func (s *service) DeleteEntry(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidEntryID
	}
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, database.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}
