package config

import "errors"

// Configuration errors
var (
	ErrInvalidPlaceholder = errors.New("placeholder must be exactly one character")
	ErrInvalidPreset      = errors.New("invalid preset")
	ErrUnknownPreset      = errors.New("unknown preset")
)
