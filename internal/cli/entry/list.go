package entry

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	entryservice "github.com/thenoetrevino/maskfield/internal/services/entry"
)

// ListCmd returns the entry list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved entries",
		Long:  "List saved entries newest first, optionally for one preset.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("preset", "", "Only list entries for this preset")
	cmd.Flags().Int("limit", 0, "Maximum number of entries (0 for all)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	preset, _ := cmd.Flags().GetString("preset")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	entries, err := cliInstance.App.EntryService.ListEntries(ctx, entryservice.ListEntriesRequest{
		Preset: preset,
		Limit:  limit,
	})
	if err != nil {
		return cli.Fail(formatter, "ENTRY_FETCH_ERROR", err)
	}

	// Output in appropriate format
	if quietMode {
		// Just print IDs (one per line)
		for _, e := range entries {
			formatter.Printf("%d\n", e.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Encode(map[string]any{
			"success": true,
			"entries": entries,
		})
	}

	// Human-readable output
	if len(entries) == 0 {
		formatter.Println("No entries found")
		return nil
	}
	for _, e := range entries {
		formatter.Println(summary(e))
	}
	return nil
}
