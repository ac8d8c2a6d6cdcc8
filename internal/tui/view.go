package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/maskfield/internal/tui/forms"
	"github.com/thenoetrevino/maskfield/internal/tui/notifications"
)

const formWidth = 60

// View renders the form inside a bordered box with the help and status lines below it
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	scheme := m.cfg.ColorScheme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Title))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1).
		Width(formWidth)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle))

	body := titleStyle.Render("maskfield") + "\n\n" + strings.TrimRight(m.form.View(), "\n")

	parts := []string{boxStyle.Render(body), hintStyle.Render(m.helpLine())}
	if m.saving {
		parts = append(parts, hintStyle.Render("saving..."))
	} else if m.status != nil {
		parts = append(parts, notifications.RenderInline(scheme, m.status.severity, m.status.message))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	view.Content = content
	return view
}

func (m *Model) helpLine() string {
	formKeys := forms.FormKeyMapFrom(m.cfg.KeyMappings)
	maskedKeys := forms.MaskedKeyMapFrom(m.cfg.KeyMappings)

	bindings := []key.Binding{formKeys.Next, formKeys.Submit, maskedKeys.Clear, formKeys.Abort}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return strings.Join(hints, " • ")
}
