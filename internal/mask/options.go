package mask

import "log/slog"

// DefaultPlaceholder is shown in empty input slots unless WithPlaceholder overrides it.
const DefaultPlaceholder = '_'

// Option is a functional option for configuring an Engine
type Option func(*engineConfig)

// engineConfig holds the configuration for Engine initialization
type engineConfig struct {
	placeholder rune
	text        string
	logger      *slog.Logger
	onChange    func(Change)
}

func defaultConfig() engineConfig {
	return engineConfig{
		placeholder: DefaultPlaceholder,
		logger:      slog.Default(),
	}
}

// WithPlaceholder sets the rune shown in empty input slots
func WithPlaceholder(p rune) Option {
	return func(cfg *engineConfig) {
		cfg.placeholder = p
	}
}

// WithText seeds the logical text. It is validated against the mask like any edit.
func WithText(text string) Option {
	return func(cfg *engineConfig) {
		cfg.text = text
	}
}

// WithLogger sets the logger for the engine
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *engineConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOnChange registers a hook called once after every completed mutation.
// The hook runs after the engine state is consistent and may call back into the engine.
func WithOnChange(fn func(Change)) Option {
	return func(cfg *engineConfig) {
		cfg.onChange = fn
	}
}
