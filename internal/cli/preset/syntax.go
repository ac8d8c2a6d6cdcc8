package preset

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/maskfield/internal/cli"
)

const syntaxWidth = 72

// SyntaxReference documents the mask language
const SyntaxReference = `# Mask syntax

A mask is a string of **markers** and **literals**. Each marker becomes an input slot;
every other character is shown as-is and can never be typed over.

| Marker | Accepts | Stored as |
|--------|---------|-----------|
| ` + "`#`" + ` | any digit | as typed |
| ` + "`?`" + ` | any letter | as typed |
| ` + "`A`" + ` | letter or digit | as typed |
| ` + "`H`" + ` | 0-9, a-f, A-F | as typed |
| ` + "`U`" + ` | any letter | upper case |
| ` + "`L`" + ` | any letter | lower case |
| ` + "`*`" + ` | anything | as typed |

## Escaping

A single quote makes the next character a literal: ` + "`'#HHHHHH`" + ` is a hex color with a
fixed leading ` + "`#`" + `, and ` + "`''`" + ` is a literal quote. A mask may not end in a bare quote.

## Typing rules

- Literals are skipped without consuming input.
- A character a slot rejects is dropped; the next character is tried in the same slot.
- Input past the last slot is discarded.
- Empty slots show the placeholder, ` + "`_`" + ` unless configured otherwise.

## Examples

| Mask | Input | Display |
|------|-------|---------|
| ` + "`(###) ###-####`" + ` | 5551234567 | (555) 123-4567 |
| ` + "`##/##/####`" + ` | 1231 | 12/31/____ |
| ` + "`UUU-####`" + ` | abc1234 | ABC-1234 |
`

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// SyntaxCmd returns the preset syntax subcommand
func SyntaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syntax",
		Short: "Describe the mask language",
		Long: `Print a reference for the mask language used by presets and --mask.

Examples:
  maskfield preset syntax
  maskfield preset syntax --raw > MASKS.md
`,
		Args: cobra.NoArgs,
		RunE: runSyntax,
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")

	return cmd
}

func runSyntax(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	formatter := &cli.OutputFormatter{}

	if raw {
		formatter.Printf("%s", SyntaxReference)
		return nil
	}

	renderer, err := getRenderer(syntaxWidth)
	if err != nil {
		return cli.Fail(formatter, "RENDER_ERROR", err)
	}
	rendered, err := renderer.Render(SyntaxReference)
	if err != nil {
		return cli.Fail(formatter, "RENDER_ERROR", err)
	}

	formatter.Println(strings.TrimRight(rendered, "\n"))
	return nil
}
