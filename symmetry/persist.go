// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"io"

	"github.com/born-ml/symtensor/internal/serialization"
)

// FileHeader describes the contents of a .sym file.
type FileHeader = serialization.Header

// Persistence errors.
var (
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrInvalidMagic     = serialization.ErrInvalidMagic
	ErrDTypeMismatch    = serialization.ErrDTypeMismatch
	ErrInvalidHeader    = serialization.ErrInvalidHeader
)

// Write encodes compact storage in .sym format. The configuration, dimension
// and element type travel with the data.
func Write[T Scalar](w io.Writer, s *Storage[T], metadata map[string]string) error {
	return serialization.Write(w, s, metadata)
}

// Read decodes storage written by Write. T must match the stored element type.
func Read[T Scalar](r io.Reader) (*Storage[T], FileHeader, error) {
	return serialization.Read[T](r)
}

// Save writes compact storage to a .sym file.
func Save[T Scalar](path string, s *Storage[T], metadata map[string]string) error {
	return serialization.Save(path, s, metadata)
}

// Load reads a .sym file written by Save.
func Load[T Scalar](path string) (*Storage[T], FileHeader, error) {
	return serialization.Load[T](path)
}
