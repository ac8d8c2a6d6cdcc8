package forms

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/maskfield/internal/config/colors"
)

// Styles holds the styles shared by every field
type Styles struct {
	Title        lipgloss.Style
	FocusedTitle lipgloss.Style

	// Masked input cells
	Literal     lipgloss.Style
	Placeholder lipgloss.Style
	Filled      lipgloss.Style
	Caret       lipgloss.Style
	Selection   lipgloss.Style

	// Confirm options
	Selected   lipgloss.Style
	Unselected lipgloss.Style

	Hint lipgloss.Style
}

// DefaultStyles returns styles for the default color scheme
func DefaultStyles() Styles {
	return StylesFrom(*colors.Default())
}

// StylesFrom builds field styles from a color scheme
func StylesFrom(scheme colors.ColorScheme) Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
		FocusedTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Accent)),

		Literal:     lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Literal)),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Placeholder)),
		Filled:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Filled)),
		Caret:       lipgloss.NewStyle().Reverse(true).Background(lipgloss.Color(scheme.Caret)),
		Selection:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Filled)).Background(lipgloss.Color(scheme.Accent)),

		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Filled)).Background(lipgloss.Color(scheme.Accent)),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),

		Hint: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(scheme.Subtle)),
	}
}
