// Package notifications renders the one-line status shown under the fill form.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/maskfield/internal/config/colors"
)

// RenderInline renders a compact single-line notification
func RenderInline(scheme colors.ColorScheme, severity Severity, message string) string {
	style := severity.style(scheme)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}
