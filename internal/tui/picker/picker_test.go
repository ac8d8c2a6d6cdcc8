package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/maskfield/internal/config"
)

func TestOptions(t *testing.T) {
	cfg := config.Default()

	opts := Options(cfg)
	require.Len(t, opts, len(cfg.Presets))

	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	assert.Equal(t, cfg.PresetNames(), values)

	for _, o := range opts {
		if o.Value == "phone" {
			assert.Contains(t, o.Key, "(###) ###-####")
		}
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNoPresetSelected)
	assert.NoError(t, Validate([]string{"phone"}))
}

func TestNewForm(t *testing.T) {
	var selected []string
	form := NewForm(config.Default(), &selected)
	assert.NotNil(t, form)
}
