package entry

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
)

// DeleteCmd returns the entry delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved entry",
		Long:  "Delete an entry by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := parseID(formatter, args[0])
	if err != nil {
		return err
	}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Get entry details for confirmation
	e, err := cliInstance.App.EntryService.GetEntry(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "ENTRY_NOT_FOUND", err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !quietMode && !jsonOutput {
		formatter.Printf("Delete entry #%d: '%s'? (y/N): ", id, e.DisplayText)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.EntryService.DeleteEntry(ctx, id); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Encode(map[string]any{
			"success":  true,
			"entry_id": id,
		})
	}

	formatter.Println(fmt.Sprintf("✓ Entry %d deleted successfully", id))
	return nil
}
