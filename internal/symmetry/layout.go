package symmetry

import "fmt"

// Layout binds a configuration to a concrete dimension and maps index tuples
// onto compact storage offsets. A Layout is immutable and safe for concurrent use.
type Layout struct {
	config   Configuration
	dim      int
	radix    []int
	size     int
	maxGroup int
}

// NewLayout validates the dimension and precomputes the per-group radices.
func NewLayout(c Configuration, dim int) (*Layout, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	rs, size, err := radices(c, dim)
	if err != nil {
		return nil, err
	}
	maxGroup := 0
	for _, g := range c.groups {
		maxGroup = max(maxGroup, g.Size())
	}
	return &Layout{config: c, dim: dim, radix: rs, size: size, maxGroup: maxGroup}, nil
}

// Config returns the configuration of the layout.
func (l *Layout) Config() Configuration {
	return l.config
}

// Dim returns the dimension of every index.
func (l *Layout) Dim() int {
	return l.dim
}

// NumPositions returns the number of index positions.
func (l *Layout) NumPositions() int {
	return l.config.rank
}

// Size returns the length of the compact backing store.
func (l *Layout) Size() int {
	return l.size
}

// Radices returns the per-group counts in discovery order.
func (l *Layout) Radices() []int {
	return append([]int(nil), l.radix...)
}

// Rank maps an index tuple onto its compact storage offset.
//
// Groups are processed in discovery order. Each block is canonicalized into
// decreasing order and ranked with the combinatorial number system; free axes
// contribute their raw value. The local values are combined by mixed-radix
// composition. The orientation is negative when the antisymmetric blocks
// needed an odd number of swaps in total. A repeated value inside an
// antisymmetric block yields Zero.
func (l *Layout) Rank(tuple ...int) (Offset, error) {
	if err := l.checkTuple(tuple); err != nil {
		return Zero, err
	}
	return l.rank(tuple), nil
}

func (l *Layout) checkTuple(tuple []int) error {
	if len(tuple) != l.config.rank {
		return fmt.Errorf("%w: got %d values for rank %d", ErrTupleLength, len(tuple), l.config.rank)
	}
	return CheckIndices(l.dim, tuple...)
}

// CheckIndices returns ErrIndexOutOfRange if any value lies outside [0, dim).
func CheckIndices(dim int, tuple ...int) error {
	for i, v := range tuple {
		if v < 0 || v >= dim {
			return fmt.Errorf("%w: position %d has value %d, dimension %d", ErrIndexOutOfRange, i, v, dim)
		}
	}
	return nil
}

func (l *Layout) rank(tuple []int) Offset {
	var stack [8]int
	buf := stack[:0]
	if l.maxGroup > len(stack) {
		buf = make([]int, 0, l.maxGroup)
	}

	index := 0
	odd := false
	for i, g := range l.config.groups {
		if g.Kind == Free {
			index = index*l.radix[i] + tuple[g.Positions[0]]
			continue
		}
		if l.radix[i] == 0 {
			return Zero
		}
		vals := buf[:0]
		for _, p := range g.Positions {
			vals = append(vals, tuple[p])
		}
		flip, zero := Canonicalize(vals, g.Kind)
		if zero {
			return Zero
		}
		if flip {
			odd = !odd
		}
		index = index*l.radix[i] + combinadic(vals, g.Kind)
	}

	if odd {
		return Slot(index, Negative)
	}
	return Slot(index, Positive)
}

// Unrank returns the canonical index tuple stored at slot: within every block
// the values are decreasing in position order. Ranking the result yields the
// positive offset of slot. Unrank exists for verification; accessors never
// need it.
func (l *Layout) Unrank(slot int) ([]int, error) {
	if slot < 0 || slot >= l.size {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSlotOutOfRange, slot, l.size)
	}

	tuple := make([]int, l.config.rank)
	vals := make([]int, l.maxGroup)
	idx := slot
	for i := len(l.config.groups) - 1; i >= 0; i-- {
		g := l.config.groups[i]
		local := idx % l.radix[i]
		idx /= l.radix[i]
		if g.Kind == Free {
			tuple[g.Positions[0]] = local
			continue
		}
		out := vals[:g.Size()]
		uncombinadic(local, l.dim, g.Kind, out)
		for j, p := range g.Positions {
			tuple[p] = out[j]
		}
	}
	return tuple, nil
}

// Rank is a convenience wrapper that builds a Layout and ranks one tuple.
func Rank(c Configuration, dim int, tuple ...int) (Offset, error) {
	l, err := NewLayout(c, dim)
	if err != nil {
		return Zero, err
	}
	return l.Rank(tuple...)
}
