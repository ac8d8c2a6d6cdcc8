// Package cli holds the pieces shared by every maskfield subcommand
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/maskfield/internal/app"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool
}

// NewCLI returns the CLI for ctx. An App already attached to ctx is reused;
// otherwise config is loaded and the database opened.
func NewCLI(ctx context.Context) (*CLI, error) {
	if a, ok := app.FromContext(ctx); ok {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)
	return &CLI{
		App:   app.New(db, cfg, app.WithLogger(slog.Default())),
		owned: true,
	}, nil
}

// LoadConfig returns the config of an App attached to ctx, or loads it from disk.
// Commands that never touch the database use this instead of NewCLI.
func LoadConfig(ctx context.Context) (*config.Config, error) {
	if a, ok := app.FromContext(ctx); ok {
		styles.Init(a.Config.ColorScheme)
		return a.Config, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	return cfg, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
