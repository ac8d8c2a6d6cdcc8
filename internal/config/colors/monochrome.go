package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Field cells
		Literal:     "#D0D0D0",
		Placeholder: "#585858",
		Filled:      "#FFFFFF",
		Caret:       "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",

		// Feedback
		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
