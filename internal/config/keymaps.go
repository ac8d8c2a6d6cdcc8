package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Forms
	Submit    string `yaml:"submit"`
	Clear     string `yaml:"clear"`
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Submit:    "ctrl+s",
		Clear:     "ctrl+u",
		NextField: "tab",
		PrevField: "shift+tab",
		Quit:      "esc",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Submit == "" {
		k.Submit = defaults.Submit
	}
	if k.Clear == "" {
		k.Clear = defaults.Clear
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
