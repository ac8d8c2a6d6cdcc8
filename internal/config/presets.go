package config

import (
	"fmt"
	"sort"
)

// Preset is a named mask pattern
type Preset struct {
	Mask        string `yaml:"mask"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// DefaultPresets returns the built-in presets
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"phone":    {Mask: "(###) ###-####", Description: "US phone number"},
		"date":     {Mask: "##/##/####", Description: "Calendar date, month/day/year"},
		"time":     {Mask: "##:##", Description: "24-hour clock time"},
		"zip":      {Mask: "#####-####", Description: "ZIP+4 postal code"},
		"ssn":      {Mask: "###-##-####", Description: "US social security number"},
		"plate":    {Mask: "UUU-####", Description: "License plate, letters forced uppercase"},
		"hexcolor": {Mask: "'#HHHHHH", Description: "CSS hex color with a fixed leading #"},
		"mac":      {Mask: "HH:HH:HH:HH:HH:HH", Description: "Hardware MAC address"},
		"isbn":     {Mask: "###-#-##-######-#", Description: "ISBN-13 book number"},
	}
}

// PresetNames returns preset names in sorted order
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset looks up a preset by name
func (c *Config) Preset(name string) (Preset, error) {
	p, ok := c.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetPlaceholder returns the placeholder for a preset, falling back to the config default
func (c *Config) PresetPlaceholder(p Preset) rune {
	if p.Placeholder != "" {
		if r, err := ParsePlaceholder(p.Placeholder); err == nil {
			return r
		}
	}
	return c.PlaceholderRune()
}
