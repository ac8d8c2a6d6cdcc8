// Package entry holds all cli commands related to saved entries
//
// e.g., maskfield entry ...
package entry

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
	"github.com/thenoetrevino/maskfield/internal/models"
)

// EntryCmd returns the entry parent command
func EntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Save and inspect masked values",
	}

	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// parseID reads a positional entry ID
func parseID(formatter *cli.OutputFormatter, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, cli.UsageError(formatter, fmt.Sprintf("invalid entry ID %q", arg))
	}
	return id, nil
}

// summary renders one entry as a single line
func summary(e *models.Entry) string {
	status := styles.SuccessStyle.Render(e.Status())
	if !e.Complete {
		status = styles.ErrorStyle.Render(e.Status())
	}
	return fmt.Sprintf("#%-4d %-10s %s  %s", e.ID, e.Preset, e.DisplayText, status)
}
