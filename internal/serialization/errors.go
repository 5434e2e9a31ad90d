package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOutOfBounds        = errors.New("entry extends beyond data section")
	ErrTooManyEntries     = errors.New("too many entries in file")
	ErrInvalidEntryName   = errors.New("invalid entry name")
	ErrDuplicateEntry     = errors.New("duplicate entry name")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Entry   string // Entry name involved, if any
	Details string // Additional details
	Err     error  // Sentinel error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("%v: entry %q: %s", e.Err, e.Entry, e.Details)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
