package symmetry

import (
	"fmt"

	"github.com/born-ml/symtensor/internal/combin"
)

// Scalar is a constraint for element types of compact storage. Elements must
// support negation, so unsigned and boolean types are excluded.
type Scalar interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 | ~int | ~complex64 | ~complex128
}

// Storage holds the independent components of one tensor in compact form.
// Reads and writes go through the layout, applying the antisymmetric sign.
//
// Storage is not safe for concurrent writes.
type Storage[T Scalar] struct {
	layout *Layout
	data   []T
}

// NewStorage allocates zeroed compact storage for the layout.
func NewStorage[T Scalar](l *Layout) *Storage[T] {
	return &Storage[T]{layout: l, data: make([]T, l.Size())}
}

// StorageFrom wraps existing compact data. The slice is used without copying
// and must hold exactly l.Size() elements.
func StorageFrom[T Scalar](l *Layout, data []T) (*Storage[T], error) {
	if len(data) != l.Size() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(data), l.Size())
	}
	return &Storage[T]{layout: l, data: data}, nil
}

// Layout returns the layout of the storage.
func (s *Storage[T]) Layout() *Layout {
	return s.layout
}

// Len returns the number of stored components.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// Data returns the backing slice. Modifying it modifies the storage.
func (s *Storage[T]) Data() []T {
	return s.data
}

// At returns the element addressed by tuple. Elements that are identically
// zero read as the zero value.
func (s *Storage[T]) At(tuple ...int) (T, error) {
	var zero T
	off, err := s.layout.Rank(tuple...)
	if err != nil {
		return zero, err
	}
	switch {
	case off.IsZero():
		return zero, nil
	case off.Sign() == Negative:
		return -s.data[off.Index()], nil
	default:
		return s.data[off.Index()], nil
	}
}

// Set writes the element addressed by tuple, storing -v when the tuple maps
// onto its slot with negative orientation. Writing an element that is
// identically zero fails with ErrZeroSlot.
func (s *Storage[T]) Set(v T, tuple ...int) error {
	off, err := s.layout.Rank(tuple...)
	if err != nil {
		return err
	}
	switch {
	case off.IsZero():
		return fmt.Errorf("%w: %v", ErrZeroSlot, tuple)
	case off.Sign() == Negative:
		s.data[off.Index()] = -v
	default:
		s.data[off.Index()] = v
	}
	return nil
}

// Dense expands the storage into a row-major array of D^R elements. It fails
// with ErrSizeOverflow when D^R does not fit in an int.
func (s *Storage[T]) Dense() ([]T, error) {
	rank, dim := s.layout.NumPositions(), s.layout.Dim()
	n, ok := combin.Pow(dim, rank)
	if !ok {
		return nil, fmt.Errorf("%w: dense size %d^%d", ErrSizeOverflow, dim, rank)
	}

	out := make([]T, n)
	tuple := make([]int, rank)
	for flat := range out {
		rem := flat
		for p := rank - 1; p >= 0; p-- {
			tuple[p] = rem % dim
			rem /= dim
		}
		off := s.layout.rank(tuple)
		switch {
		case off.IsZero():
		case off.Sign() == Negative:
			out[flat] = -s.data[off.Index()]
		default:
			out[flat] = s.data[off.Index()]
		}
	}
	return out, nil
}
