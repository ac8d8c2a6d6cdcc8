// Package format holds the format command
//
// e.g., maskfield format --preset phone 5551234567
package format

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
	"github.com/thenoetrevino/maskfield/internal/mask"
)

// Result is the outcome of applying a mask to logical text
type Result struct {
	Mask     string `json:"mask"`
	Display  string `json:"display"`
	Logical  string `json:"logical"`
	Complete bool   `json:"complete"`
	Caret    int    `json:"caret"`
	Capacity int    `json:"capacity"`
}

// FormatCmd returns the format command
func FormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [TEXT...]",
		Short: "Apply a mask to text",
		Long: `Run text through a mask the way a masked field would accept it as typed.
Characters a slot rejects are dropped and input past the last slot is discarded.

Examples:
  # Built-in preset
  maskfield format --preset phone 5551234567

  # Inline mask with a custom placeholder
  maskfield format --mask "##/##/####" --placeholder "." 1231

  # Display text only, for scripts
  DATE=$(maskfield format --preset date 12312024 --quiet)

  # JSON output for agents
  maskfield format --preset mac 001a2b3c4d5e --json
`,
		RunE: runFormat,
	}

	cmd.Flags().String("mask", "", "Mask pattern (# digit, ? letter, A alphanumeric, H hex, U upper, L lower, * any, ' escape)")
	cmd.Flags().String("preset", "", "Named preset to take the mask from")
	cmd.Flags().String("placeholder", "", "Character shown in empty slots")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (display text only)")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	maskFlag, _ := cmd.Flags().GetString("mask")
	presetFlag, _ := cmd.Flags().GetString("preset")
	placeholderFlag, _ := cmd.Flags().GetString("placeholder")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cfg, err := cli.LoadConfig(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "CONFIG_ERROR", err)
	}

	pattern, placeholder, err := cli.ResolveMask(cfg, maskFlag, presetFlag, placeholderFlag)
	if errors.Is(err, cli.ErrMaskSource) {
		return cli.UsageError(formatter, err.Error())
	}
	if err != nil {
		return cli.Fail(formatter, "MASK_ERROR", err)
	}

	engine, err := mask.New(pattern, mask.WithPlaceholder(placeholder), mask.WithLogger(slog.Default()))
	if err != nil {
		return cli.Fail(formatter, "MALFORMED_MASK", err)
	}

	res := engine.SetLogicalText(strings.Join(args, " "))
	result := Result{
		Mask:     engine.Mask(),
		Display:  res.Display,
		Logical:  res.Logical,
		Complete: engine.IsComplete(),
		Caret:    res.Caret,
		Capacity: engine.Capacity(),
	}

	if quietMode {
		formatter.Println(result.Display)
		return nil
	}

	if jsonOutput {
		return formatter.Success(result)
	}

	// Human-readable output
	status := styles.ErrorStyle.Render("partial")
	if result.Complete {
		status = styles.SuccessStyle.Render("complete")
	}
	formatter.Println(styles.RenderCard(strings.Join([]string{
		styles.Field("Display", styles.RenderSlots(engine.Slots())),
		styles.Field("Logical", result.Logical),
		styles.Field("Status", status),
		styles.SubtitleStyle.Render(fmt.Sprintf("mask %s  caret %d  capacity %d",
			result.Mask, result.Caret, result.Capacity)),
	}, "\n")))
	return nil
}
