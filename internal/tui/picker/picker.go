// Package picker lets the user choose presets interactively before filling them.
package picker

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/maskfield/internal/config"
)

// ErrNoPresetSelected is returned by the form's validation when nothing is picked
var ErrNoPresetSelected = errors.New("select at least one preset")

// Options returns one option per configured preset, sorted by name.
// The label shows the mask next to the name.
func Options(cfg *config.Config) []huh.Option[string] {
	names := cfg.PresetNames()
	opts := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		p := cfg.Presets[name]
		opts = append(opts, huh.NewOption(fmt.Sprintf("%-10s %s", name, p.Mask), name))
	}
	return opts
}

// Validate rejects an empty selection
func Validate(selected []string) error {
	if len(selected) == 0 {
		return ErrNoPresetSelected
	}
	return nil
}

// NewForm builds the preset multi-select. The chosen preset names are written to selected.
func NewForm(cfg *config.Config, selected *[]string) *huh.Form {
	fields := []huh.Field{
		huh.NewMultiSelect[string]().
			Key("presets").
			Title("Presets").
			Description("Pick the masked fields to fill (space to toggle, enter to confirm)").
			Options(Options(cfg)...).
			Filterable(true).
			Validate(Validate).
			Value(selected),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(Theme(cfg.ColorScheme))
}

// Run shows the picker and returns the chosen preset names
func Run(cfg *config.Config) ([]string, error) {
	var selected []string
	if err := NewForm(cfg, &selected).Run(); err != nil {
		return nil, err
	}
	return selected, nil
}
