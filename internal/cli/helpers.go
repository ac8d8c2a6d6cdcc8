package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/maskfield/internal/config"
)

// ErrMaskSource is returned when neither or both of --mask and --preset are given
var ErrMaskSource = errors.New("exactly one of --mask or --preset is required")

// ResolveMask turns the --mask, --preset and --placeholder flags into a pattern and placeholder.
// An empty placeholderFlag keeps the preset's or the configured default.
func ResolveMask(cfg *config.Config, maskFlag, presetFlag, placeholderFlag string) (string, rune, error) {
	if (maskFlag == "") == (presetFlag == "") {
		return "", 0, ErrMaskSource
	}

	pattern := maskFlag
	placeholder := cfg.PlaceholderRune()
	if presetFlag != "" {
		p, err := cfg.Preset(presetFlag)
		if err != nil {
			return "", 0, err
		}
		pattern = p.Mask
		placeholder = cfg.PresetPlaceholder(p)
	}

	if placeholderFlag != "" {
		r, err := config.ParsePlaceholder(placeholderFlag)
		if err != nil {
			return "", 0, fmt.Errorf("--placeholder: %w", err)
		}
		placeholder = r
	}

	return pattern, placeholder, nil
}
