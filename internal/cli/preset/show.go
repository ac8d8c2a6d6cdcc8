package preset

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/mask"
)

// ShowCmd returns the preset show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one preset and its slots",
		Long: `Show a preset's mask, placeholder and the kind of every display slot.

Examples:
  maskfield preset show phone
  maskfield preset show mac --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cfg, err := cli.LoadConfig(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "CONFIG_ERROR", err)
	}

	info, err := describe(cfg, args[0])
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("PRESET_NOT_FOUND", err.Error(),
			"run 'maskfield preset list' to see available presets"); fmtErr != nil {
			return fmtErr
		}
		return cli.WithExitCode(cli.Classify(err), err)
	}

	if jsonOutput {
		return formatter.Success(info)
	}

	slots, err := mask.Compile(info.Mask, []rune(info.Placeholder)[0])
	if err != nil {
		return cli.Fail(formatter, "MALFORMED_MASK", err)
	}

	lines := []string{
		styles.TitleStyle.Render(info.Name),
		styles.Field("Mask", info.Mask),
		styles.Field("Placeholder", info.Placeholder),
		styles.Field("Capacity", fmt.Sprintf("%d", info.Capacity)),
		styles.Field("Empty", styles.RenderSlots(slots)),
	}
	if info.Description != "" {
		lines = append(lines, "", wordwrap.String(info.Description, styles.CardWidth-4))
	}
	lines = append(lines, "", styles.LabelStyle.Render("Slots:"))
	for i, s := range slots {
		lines = append(lines, fmt.Sprintf("  %2d %s", i, slotKind(s)))
	}

	formatter.Println(styles.RenderCard(strings.Join(lines, "\n")))
	return nil
}

func slotKind(s mask.Slot) string {
	if r, ok := s.Literal(); ok {
		return fmt.Sprintf("literal %q", r)
	}
	return fmt.Sprintf("%s (%c)", s.Kind(), s.Kind().Marker())
}

// describe compiles a preset and reports it
func describe(cfg *config.Config, name string) (Info, error) {
	p, err := cfg.Preset(name)
	if err != nil {
		return Info{}, err
	}

	placeholder := cfg.PresetPlaceholder(p)
	e, err := mask.New(p.Mask, mask.WithPlaceholder(placeholder))
	if err != nil {
		return Info{}, fmt.Errorf("preset %s: %w", name, err)
	}

	return Info{
		Name:        name,
		Mask:        p.Mask,
		Placeholder: string(placeholder),
		Description: p.Description,
		Capacity:    e.Capacity(),
		Empty:       e.DisplayText(),
	}, nil
}
