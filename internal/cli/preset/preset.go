// Package preset holds all cli commands related to named masks
//
// e.g., maskfield preset ...
package preset

import (
	"github.com/spf13/cobra"
)

// PresetCmd returns the preset parent command
func PresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Inspect named masks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SyntaxCmd())

	return cmd
}
