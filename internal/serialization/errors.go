package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrDTypeMismatch      = errors.New("element type does not match file")
	ErrInvalidHeader      = errors.New("invalid header")
)

// ValidationError provides detailed information about a header that does not
// describe a usable layout.
type ValidationError struct {
	Field   string // Header field at fault, e.g. "groups" or "size".
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Details)
}

// Unwrap lets callers match ErrInvalidHeader.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidHeader
}
