package entry

import "errors"

// Domain errors for entry service
var (
	// Validation errors
	ErrEmptyPreset     = errors.New("preset name cannot be empty")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrIncompleteValue = errors.New("value does not fill every input slot of the mask")
	ErrInvalidEntryID  = errors.New("invalid entry ID")

	// Lookup errors
	ErrEntryNotFound = errors.New("entry not found")
)
