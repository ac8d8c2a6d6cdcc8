// Package launcher runs the interactive fill form as a bubbletea program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/maskfield/internal/app"
	"github.com/thenoetrevino/maskfield/internal/tui"
)

// Launch starts the fill form for opts and blocks until the user quits or a signal arrives
func Launch(ctx context.Context, a *app.App, opts tui.Options) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model, err := tui.New(ctx, a.EntryService, a.Config, opts)
	if err != nil {
		return err
	}

	slog.Info("fill form starting", "presets", opts.Presets, "allow_partial", opts.AllowPartial)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
