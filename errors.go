package seamcarve

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAllocation is returned when the pixel grid could not be allocated.
	ErrAllocation = errors.New("unable to allocate the pixel grid")

	// ErrInvalidSeam is returned when a seam does not fit the current grid.
	ErrInvalidSeam = errors.New("invalid seam")
)

// FormatError reports a malformed pixel map. Loading stops at the first one
// and no partially decoded grid is ever returned.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "format error: " + e.Msg
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// InputValidationError reports a dimension that is non-positive
// or out of order with respect to the source image.
type InputValidationError struct {
	Field string
	Value int
	Msg   string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%d): %s", e.Field, e.Value, e.Msg)
}
