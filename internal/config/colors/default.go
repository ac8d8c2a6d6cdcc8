package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Field cells
		Literal:     "#5F87D7",
		Placeholder: "#585858",
		Filled:      "#D0D0D0",
		Caret:       "#D75FD7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",

		// Feedback
		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}
