package preset

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/cli/styles"
)

const descriptionWidth = 40

// Info is a preset as reported by the CLI
type Info struct {
	Name        string `json:"name"`
	Mask        string `json:"mask"`
	Placeholder string `json:"placeholder"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity"`
	Empty       string `json:"empty"`
}

// ListCmd returns the preset list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured presets",
		Long: `List every preset from the config file, or the built-in presets when none are configured.

Examples:
  maskfield preset list
  maskfield preset list --json
  maskfield preset list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cfg, err := cli.LoadConfig(cmd.Context())
	if err != nil {
		return cli.Fail(formatter, "CONFIG_ERROR", err)
	}

	infos := make([]Info, 0, len(cfg.Presets))
	for _, name := range cfg.PresetNames() {
		info, err := describe(cfg, name)
		if err != nil {
			return cli.Fail(formatter, "PRESET_ERROR", err)
		}
		infos = append(infos, info)
	}

	if quietMode {
		for _, info := range infos {
			formatter.Println(info.Name)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(infos)
	}

	// Human-readable output
	for _, info := range infos {
		formatter.Printf("%s  %s\n",
			styles.TitleStyle.Render(padRight(info.Name, 10)),
			info.Empty,
		)
		if info.Description != "" {
			wrapped := wordwrap.String(info.Description, descriptionWidth)
			for _, line := range strings.Split(wrapped, "\n") {
				formatter.Println("            " + styles.SubtitleStyle.Render(line))
			}
		}
	}
	return nil
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
