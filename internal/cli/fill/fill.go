// Package fill holds the interactive fill command
//
// e.g., maskfield fill --preset phone --preset date
package fill

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/app"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/launcher"
	"github.com/thenoetrevino/maskfield/internal/tui"
	"github.com/thenoetrevino/maskfield/internal/tui/picker"
)

// Swapped out in tests; both need a terminal.
var (
	pickPresets = picker.Run
	launch      = func(ctx context.Context, a *app.App, opts tui.Options) error {
		return launcher.Launch(ctx, a, opts)
	}
)

// FillCmd returns the fill command
func FillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill masked fields interactively and save them",
		Long: `Open a form with one masked field per preset. Typing is checked against
the mask as you go; ctrl+s saves every non-empty field as an entry.

Without --preset a picker lists the configured presets first.

Examples:
  # Pick presets interactively
  maskfield fill

  # Phone and date fields
  maskfield fill --preset phone --preset date

  # Allow saving values that leave slots empty
  maskfield fill --preset date --allow-partial
`,
		Args: cobra.NoArgs,
		RunE: runFill,
	}

	cmd.Flags().StringSlice("preset", nil, "Preset to fill (repeatable)")
	cmd.Flags().Bool("allow-partial", false, "Offer to save values that do not fill every slot")

	return cmd
}

func runFill(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	presets, _ := cmd.Flags().GetStringSlice("preset")
	allowPartial, _ := cmd.Flags().GetBool("allow-partial")

	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	cfg := cliInstance.App.Config
	if len(presets) == 0 {
		presets, err = pickPresets(cfg)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return cli.Fail(formatter, "PICKER_ERROR", err)
		}
	}

	presets, err = resolve(cfg, presets)
	if err != nil {
		return cli.Fail(formatter, "PRESET_NOT_FOUND", err)
	}

	opts := tui.Options{Presets: presets, AllowPartial: allowPartial}
	if err := launch(ctx, cliInstance.App, opts); err != nil {
		return cli.Fail(formatter, "TUI_ERROR", err)
	}
	return nil
}

// resolve checks every name against the config and drops repeats, keeping first-seen order
func resolve(cfg *config.Config, names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		if _, err := cfg.Preset(name); err != nil {
			return nil, err
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}
