package entry

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	entryservice "github.com/thenoetrevino/maskfield/internal/services/entry"
)

// SaveCmd returns the entry save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save TEXT...",
		Short: "Save a value under a preset",
		Long: `Run text through a preset's mask and store the result.
Values that leave input slots empty are refused unless --allow-partial is given.

Examples:
  # Human-readable output
  maskfield entry save --preset phone 5551234567

  # Quiet mode for bash capture
  ENTRY_ID=$(maskfield entry save --preset zip 123456789 --quiet)

  # Keep an incomplete value
  maskfield entry save --preset date 1231 --allow-partial --note "year unknown"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSave,
	}

	// Required flags
	cmd.Flags().String("preset", "", "Preset name (required)")
	if err := cmd.MarkFlagRequired("preset"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("note", "", "Free-text note stored with the value")
	cmd.Flags().Bool("allow-partial", false, "Store values that do not fill every slot")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	preset, _ := cmd.Flags().GetString("preset")
	note, _ := cmd.Flags().GetString("note")
	allowPartial, _ := cmd.Flags().GetBool("allow-partial")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	saved, err := cliInstance.App.EntryService.SaveEntry(ctx, entryservice.SaveEntryRequest{
		Preset:       preset,
		Text:         strings.Join(args, " "),
		Note:         note,
		AllowPartial: allowPartial,
	})
	if err != nil {
		return cli.Fail(formatter, "ENTRY_SAVE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(saved)
	}

	formatter.Printf("✓ Saved %s\n", summary(saved))
	return nil
}
