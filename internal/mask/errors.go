package mask

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations. Typed errors below match these with errors.Is.
var (
	// ErrMalformedMask indicates a pattern that cannot be compiled.
	ErrMalformedMask = errors.New("malformed mask")

	// ErrIndexRange indicates display indices outside [0, length] or start > end.
	ErrIndexRange = errors.New("index out of range")
)

// MalformedMaskError reports a pattern ending in a bare escape marker.
type MalformedMaskError struct {
	Pattern string
	Offset  int // rune offset of the dangling escape
}

func (e *MalformedMaskError) Error() string {
	return fmt.Sprintf("malformed mask %q: escape at offset %d has no following character", e.Pattern, e.Offset)
}

// Is matches ErrMalformedMask.
func (e *MalformedMaskError) Is(target error) bool {
	return target == ErrMalformedMask
}

// IndexRangeError reports an edit range that does not fit the display text.
type IndexRangeError struct {
	Start, End int
	Length     int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("index out of range: [%d:%d) with display length %d", e.Start, e.End, e.Length)
}

// Is matches ErrIndexRange.
func (e *IndexRangeError) Is(target error) bool {
	return target == ErrIndexRange
}

func checkRange(start, end, length int) error {
	if start < 0 || start > end || end > length {
		return &IndexRangeError{Start: start, End: end, Length: length}
	}
	return nil
}
