package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/thenoetrevino/maskfield/internal/config/colors"
	"github.com/thenoetrevino/maskfield/internal/mask"
	"gopkg.in/yaml.v3"
)

// PresetsFileEnv names an extra YAML file whose presets are merged over the config's
const PresetsFileEnv = "MASKFIELD_PRESETS_FILE"

// Config represents the application configuration
type Config struct {
	Placeholder string             `yaml:"placeholder"`
	Presets     map[string]Preset  `yaml:"presets"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns a config holding only default values
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadPresetsFile loads and merges presets from the MASKFIELD_PRESETS_FILE environment variable
func loadPresetsFile(config *Config) {
	presetsFile := os.Getenv(PresetsFileEnv)
	if presetsFile == "" {
		return
	}

	if _, err := os.Stat(presetsFile); err != nil {
		return
	}

	data, err := os.ReadFile(presetsFile)
	if err != nil {
		return
	}

	var extra struct {
		Presets map[string]Preset `yaml:"presets"`
	}

	if yaml.Unmarshal(data, &extra) == nil {
		if config.Presets == nil {
			config.Presets = make(map[string]Preset, len(extra.Presets))
		}
		for name, p := range extra.Presets {
			config.Presets[name] = p
		}
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return loadDefault()
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return loadDefault()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	// Merge presets from MASKFIELD_PRESETS_FILE if set
	loadPresetsFile(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDefault builds the default config plus any presets file
func loadDefault() (*Config, error) {
	config := &Config{}
	config.applyDefaults()
	loadPresetsFile(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks the placeholder and compiles every preset mask
func (c *Config) Validate() error {
	if _, err := ParsePlaceholder(c.Placeholder); err != nil {
		return err
	}
	for _, name := range c.PresetNames() {
		p := c.Presets[name]
		if p.Placeholder != "" {
			if _, err := ParsePlaceholder(p.Placeholder); err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
		}
		if _, err := mask.Compile(p.Mask, mask.DefaultPlaceholder); err != nil {
			return fmt.Errorf("%w: preset %q: %w", ErrInvalidPreset, name, err)
		}
	}
	return nil
}

// PlaceholderRune returns the configured default placeholder
func (c *Config) PlaceholderRune() rune {
	r, err := ParsePlaceholder(c.Placeholder)
	if err != nil {
		return mask.DefaultPlaceholder
	}
	return r
}

// ParsePlaceholder converts a one-character string into a placeholder rune
func ParsePlaceholder(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlaceholder, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "maskfield", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "maskfield", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Placeholder == "" {
		c.Placeholder = string(mask.DefaultPlaceholder)
	}
	if len(c.Presets) == 0 {
		c.Presets = DefaultPresets()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
