package notifications

import "github.com/thenoetrevino/maskfield/internal/config/colors"

type style struct {
	icon       string
	foreground string
}

func (s Severity) style(scheme colors.ColorScheme) style {
	switch s {
	case Warning:
		return style{icon: "⚠", foreground: scheme.Caret}
	case Error:
		return style{icon: "✕", foreground: scheme.Error}
	default:
		return style{icon: "✓", foreground: scheme.Success}
	}
}
