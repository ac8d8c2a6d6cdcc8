package entry

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
)

// ShowCmd returns the entry show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one saved entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	e, err := cliInstance.App.EntryService.GetEntry(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "ENTRY_NOT_FOUND", err)
	}

	if jsonOutput {
		return formatter.Success(e)
	}

	lines := []string{
		styles.TitleStyle.Render(e.DisplayText),
		styles.Field("ID", strconv.Itoa(e.ID)),
		styles.Field("Preset", e.Preset),
		styles.Field("Mask", e.Mask),
		styles.Field("Logical", e.LogicalText),
		styles.Field("Status", e.Status()),
		styles.Field("Saved", e.CreatedAt.Format("2006-01-02 15:04:05")),
	}
	if e.Note != "" {
		lines = append(lines, styles.Field("Note", e.Note))
	}
	formatter.Println(styles.RenderCard(strings.Join(lines, "\n")))
	return nil
}
