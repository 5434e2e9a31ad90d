package shapeinfo

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrOverflow          = errors.New("integer overflow")
	ErrCorruptDescriptor = errors.New("corrupt shape descriptor")
)

// ShapeError provides detailed information about a rejected layout or a
// malformed descriptor. It unwraps to one of the sentinel errors above.
type ShapeError struct {
	Op      string // Operation that failed (e.g., "encode", "decode")
	Field   string // Offending field (e.g., "stride", "rank")
	Details string // Additional details
	Err     error  // Sentinel error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %v: %s: %s", e.Op, e.Err, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func invalidShape(op, field, format string, args ...any) error {
	return &ShapeError{Op: op, Field: field, Details: fmt.Sprintf(format, args...), Err: ErrInvalidShape}
}

func overflow(op, field, format string, args ...any) error {
	return &ShapeError{Op: op, Field: field, Details: fmt.Sprintf(format, args...), Err: ErrOverflow}
}

func corrupt(field, format string, args ...any) error {
	return &ShapeError{Op: "decode", Field: field, Details: fmt.Sprintf(format, args...), Err: ErrCorruptDescriptor}
}
