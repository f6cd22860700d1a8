package verify

import (
	"errors"
	"fmt"
)

// Violation categories.
var (
	ErrSlotRange       = errors.New("offset outside storage")
	ErrZeroRule        = errors.New("zero offset does not match antisymmetric repeat")
	ErrExchange        = errors.New("exchange rule violated")
	ErrNotSurjective   = errors.New("storage slot never addressed")
	ErrRoundTrip       = errors.New("unrank/rank round trip mismatch")
	ErrSpaceTooLarge   = errors.New("index space too large for exhaustive check")
	ErrProgramMismatch = errors.New("rank program disagrees with layout")
)

// Violation describes one failed property for a configuration and tuple.
type Violation struct {
	Err     error  // One of the category errors above.
	Config  string // Configuration in String form.
	Dim     int
	Tuple   []int // Offending tuple, if any.
	Details string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	if v.Tuple != nil {
		return fmt.Sprintf("%v: %s D=%d tuple %v: %s", v.Err, v.Config, v.Dim, v.Tuple, v.Details)
	}
	return fmt.Sprintf("%v: %s D=%d: %s", v.Err, v.Config, v.Dim, v.Details)
}

// Unwrap returns the category error.
func (v *Violation) Unwrap() error {
	return v.Err
}
