// Package styles renders human-readable CLI output with lipgloss
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/maskfield/internal/config/colors"
	"github.com/thenoetrevino/maskfield/internal/mask"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Display:", "Logical:"

	// Display text cells
	LiteralStyle     lipgloss.Style
	PlaceholderStyle lipgloss.Style
	FilledStyle      lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	LiteralStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Literal))

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Placeholder))

	FilledStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Filled))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))
}

// RenderSlots colors each display cell by what it holds: literal, placeholder or accepted input.
// Adjacent cells of the same class are rendered as one run.
func RenderSlots(slots []mask.Slot) string {
	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style

	flush := func() {
		if len(run) > 0 && runStyle != nil {
			b.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for _, s := range slots {
		style := SlotStyle(s)
		if runStyle != style {
			flush()
			runStyle = style
		}
		run = append(run, s.Value())
	}
	flush()
	return b.String()
}

// SlotStyle returns the style a display cell is drawn with
func SlotStyle(s mask.Slot) *lipgloss.Style {
	switch {
	case s.IsLiteral():
		return &LiteralStyle
	case s.Filled():
		return &FilledStyle
	default:
		return &PlaceholderStyle
	}
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + value
}
