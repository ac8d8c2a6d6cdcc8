package colors

// ColorScheme defines the colors used to draw masked fields
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (focused field title, form border)
	Accent string `yaml:"accent"`

	// Field cell colors
	Literal     string `yaml:"literal"`     // Fixed mask characters
	Placeholder string `yaml:"placeholder"` // Empty input slots
	Filled      string `yaml:"filled"`      // Accepted input
	Caret       string `yaml:"caret"`       // Caret cell background

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Help and status text

	// Feedback
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Literal == "" {
		c.Literal = preset.Literal
	}
	if c.Placeholder == "" {
		c.Placeholder = preset.Placeholder
	}
	if c.Filled == "" {
		c.Filled = preset.Filled
	}
	if c.Caret == "" {
		c.Caret = preset.Caret
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Literal != "" {
		c.Literal = other.Literal
	}
	if other.Placeholder != "" {
		c.Placeholder = other.Placeholder
	}
	if other.Filled != "" {
		c.Filled = other.Filled
	}
	if other.Caret != "" {
		c.Caret = other.Caret
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Error != "" {
		c.Error = other.Error
	}
}
