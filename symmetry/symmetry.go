// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symmetry

import (
	"iter"

	"github.com/born-ml/symtensor/internal/symmetry"
)

// Kind is the exchange symmetry carried by a group of index positions.
type Kind = symmetry.Kind

// Group kinds.
const (
	Free          Kind = symmetry.Free
	Symmetric     Kind = symmetry.Symmetric
	Antisymmetric Kind = symmetry.Antisymmetric
)

// Group is a set of index positions sharing one exchange symmetry.
type Group = symmetry.Group

// Configuration is an immutable, ordered partition of index positions into groups.
type Configuration = symmetry.Configuration

// Description is the structural summary of a configuration.
type Description = symmetry.Description

// BlockDescription is the structural summary of one block.
type BlockDescription = symmetry.BlockDescription

// Layout maps index tuples of one configuration and dimension onto compact offsets.
type Layout = symmetry.Layout

// Offset is either Zero or a storage slot with a sign.
type Offset = symmetry.Offset

// Sign is the orientation of a stored component.
type Sign = symmetry.Sign

// Signs.
const (
	Positive Sign = symmetry.Positive
	Negative Sign = symmetry.Negative
)

// Zero is the offset of an element that is algebraically zero.
var Zero = symmetry.Zero

// Scalar is a constraint for element types of compact storage.
type Scalar = symmetry.Scalar

// Storage holds the independent components of one tensor in compact form.
type Storage[T Scalar] = symmetry.Storage[T]

// RankProgram is the symbolic form of Layout.Rank.
type RankProgram = symmetry.RankProgram

// Canonicalization is one sorting step of a RankProgram.
type Canonicalization = symmetry.Canonicalization

// Errors.
var (
	ErrInvalidRank               = symmetry.ErrInvalidRank
	ErrInvalidDimension          = symmetry.ErrInvalidDimension
	ErrConfigurationInconsistent = symmetry.ErrConfigurationInconsistent
	ErrTupleLength               = symmetry.ErrTupleLength
	ErrIndexOutOfRange           = symmetry.ErrIndexOutOfRange
	ErrSlotOutOfRange            = symmetry.ErrSlotOutOfRange
	ErrSizeOverflow              = symmetry.ErrSizeOverflow
	ErrZeroSlot                  = symmetry.ErrZeroSlot
	ErrDataLength                = symmetry.ErrDataLength
)

// NewConfiguration builds a configuration from explicit groups.
func NewConfiguration(rank int, groups ...Group) (Configuration, error) {
	return symmetry.NewConfiguration(rank, groups...)
}

// Enumerate returns every configuration of the given rank in canonical order.
func Enumerate(rank int) ([]Configuration, error) {
	return symmetry.Enumerate(rank)
}

// All streams the configurations of Enumerate in the same order.
func All(rank int) iter.Seq[Configuration] {
	return symmetry.All(rank)
}

// Count returns the number of configurations of the given rank.
func Count(rank int) (int, error) {
	return symmetry.Count(rank)
}

// TotalSize returns the compact storage length of a configuration.
func TotalSize(c Configuration, dim int) (int, error) {
	return symmetry.TotalSize(c, dim)
}

// NewLayout binds a configuration to a dimension.
func NewLayout(c Configuration, dim int) (*Layout, error) {
	return symmetry.NewLayout(c, dim)
}

// Rank maps one index tuple onto its compact storage offset.
func Rank(c Configuration, dim int, tuple ...int) (Offset, error) {
	return symmetry.Rank(c, dim, tuple...)
}

// NewStorage allocates zeroed compact storage for a layout.
func NewStorage[T Scalar](l *Layout) *Storage[T] {
	return symmetry.NewStorage[T](l)
}

// StorageFrom wraps existing compact data of length l.Size() without copying.
func StorageFrom[T Scalar](l *Layout, data []T) (*Storage[T], error) {
	return symmetry.StorageFrom(l, data)
}

// Slot returns the offset of a storage slot with the given sign.
func Slot(index int, sign Sign) Offset {
	return symmetry.Slot(index, sign)
}

// DecodeOffset is the inverse of Offset.Encode.
func DecodeOffset(v int) Offset {
	return symmetry.DecodeOffset(v)
}

// Canonicalize sorts one group of values into decreasing order in place.
// For antisymmetric groups it reports the swap parity and repeated values.
func Canonicalize(values []int, kind Kind) (flip, zero bool) {
	return symmetry.Canonicalize(values, kind)
}

// CheckIndices returns ErrIndexOutOfRange if any value lies outside [0, dim).
func CheckIndices(dim int, tuple ...int) error {
	return symmetry.CheckIndices(dim, tuple...)
}

// Binomial returns C(n, k) exactly; the second result is false on overflow.
func Binomial(n, k int) (int, bool) {
	return symmetry.Binomial(n, k)
}

// Choose returns C(n, k) and panics on overflow.
func Choose(n, k int) int {
	return symmetry.Choose(n, k)
}

// Describe returns the structural summary of a configuration.
func Describe(c Configuration) Description {
	return c.Describe()
}

// SizeExpression returns TotalSize as an expression over the dimension D.
func SizeExpression(c Configuration) string {
	return symmetry.SizeExpression(c).String()
}

// RankExpression returns the symbolic rank program of a configuration.
func RankExpression(c Configuration) RankProgram {
	return symmetry.RankExpression(c)
}
