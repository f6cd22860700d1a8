// Package verify checks the storage layouts of internal/symmetry exhaustively:
// every tuple of [0,D)^R is ranked and the result is checked against the
// defining properties of compact storage.
package verify

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/born-ml/symtensor/internal/combin"
	"github.com/born-ml/symtensor/internal/parallel"
	"github.com/born-ml/symtensor/internal/symmetry"
)

// MaxTuples bounds the index space of one exhaustive check.
const MaxTuples = 1 << 24

// Report summarizes a successful check of one configuration.
type Report struct {
	Config string
	Dim    int
	Size   int // Compact storage length.
	Tuples int // Number of tuples ranked (D^R).
	Zeros  int // Tuples mapped onto Zero.
}

// Options selects the properties to check.
type Options struct {
	Parallel  parallel.Config
	Exchange  bool // Check the exchange rules for every pair inside a block.
	RoundTrip bool // Check Unrank/Rank on every slot.
	Program   bool // Check RankProgram.Eval against Layout.Rank.
}

// DefaultOptions enables every check.
func DefaultOptions() Options {
	return Options{
		Parallel:  parallel.DefaultConfig(),
		Exchange:  true,
		RoundTrip: true,
		Program:   true,
	}
}

// Configuration ranks every tuple of c over dim and checks that:
//   - non-zero offsets lie in [0, size) and cover every slot,
//   - an offset is Zero exactly when an antisymmetric block repeats a value,
//   - swapping two values in a symmetric block keeps the offset and in an
//     antisymmetric block negates it (Options.Exchange),
//   - Unrank followed by Rank returns the positive slot (Options.RoundTrip),
//   - the symbolic rank program agrees with the layout (Options.Program).
func Configuration(ctx context.Context, c symmetry.Configuration, dim int, opts Options) (Report, error) {
	l, err := symmetry.NewLayout(c, dim)
	if err != nil {
		return Report{}, err
	}
	rank := c.Rank()
	tuples, ok := combin.Pow(dim, rank)
	if !ok || tuples > MaxTuples {
		return Report{}, fmt.Errorf("%w: %d^%d", ErrSpaceTooLarge, dim, rank)
	}

	r := Report{Config: c.String(), Dim: dim, Size: l.Size(), Tuples: tuples}
	violation := func(err error, tuple []int, format string, args ...any) error {
		return &Violation{Err: err, Config: r.Config, Dim: dim, Tuple: slices.Clone(tuple), Details: fmt.Sprintf(format, args...)}
	}

	var program symmetry.RankProgram
	if opts.Program {
		program = symmetry.RankExpression(c)
	}
	groups := c.Groups()
	hits := make([]atomic.Bool, l.Size())
	var zeros atomic.Int64

	err = parallel.ForErr(ctx, tuples, func(flat int) error {
		tuple := decode(flat, rank, dim)
		off, err := l.Rank(tuple...)
		if err != nil {
			return err
		}

		repeat := antisymmetricRepeat(groups, tuple)
		if off.IsZero() != repeat {
			return violation(ErrZeroRule, tuple, "offset %s, repeat %t", off, repeat)
		}
		if off.IsZero() {
			zeros.Add(1)
		} else {
			if off.Index() < 0 || off.Index() >= l.Size() {
				return violation(ErrSlotRange, tuple, "offset %s, size %d", off, l.Size())
			}
			hits[off.Index()].Store(true)
		}

		if opts.Exchange {
			if err := checkExchange(l, groups, tuple, off, violation); err != nil {
				return err
			}
		}
		if opts.Program {
			got, err := program.Eval(dim, tuple...)
			if err != nil {
				return err
			}
			if got != off {
				return violation(ErrProgramMismatch, tuple, "program %s, layout %s", got, off)
			}
		}
		return nil
	}, opts.Parallel)
	if err != nil {
		return Report{}, err
	}

	for slot := range hits {
		if !hits[slot].Load() {
			return Report{}, violation(ErrNotSurjective, nil, "slot %d of %d", slot, l.Size())
		}
	}

	if opts.RoundTrip {
		err = parallel.ForErr(ctx, l.Size(), func(slot int) error {
			tuple, err := l.Unrank(slot)
			if err != nil {
				return err
			}
			off, err := l.Rank(tuple...)
			if err != nil {
				return err
			}
			if off != symmetry.Slot(slot, symmetry.Positive) {
				return violation(ErrRoundTrip, tuple, "slot %d ranks to %s", slot, off)
			}
			return nil
		}, opts.Parallel)
		if err != nil {
			return Report{}, err
		}
	}

	r.Zeros = int(zeros.Load())
	return r, nil
}

// Rank checks every configuration of the given rank, in enumeration order.
func Rank(ctx context.Context, rank, dim int, opts Options) ([]Report, error) {
	configs, err := symmetry.Enumerate(rank)
	if err != nil {
		return nil, err
	}
	reports := make([]Report, 0, len(configs))
	for _, c := range configs {
		r, err := Configuration(ctx, c, dim, opts)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func checkExchange(l *symmetry.Layout, groups []symmetry.Group, tuple []int, base symmetry.Offset,
	violation func(error, []int, string, ...any) error,
) error {
	swapped := make([]int, len(tuple))
	for _, g := range groups {
		if g.Kind == symmetry.Free {
			continue
		}
		for a := 0; a < len(g.Positions); a++ {
			for b := a + 1; b < len(g.Positions); b++ {
				copy(swapped, tuple)
				pa, pb := g.Positions[a], g.Positions[b]
				swapped[pa], swapped[pb] = swapped[pb], swapped[pa]
				off, err := l.Rank(swapped...)
				if err != nil {
					return err
				}
				want := base.Encode()
				if g.Kind == symmetry.Antisymmetric {
					want = -want
				}
				if off.Encode() != want {
					return violation(ErrExchange, tuple, "swapping positions %d and %d of %s block gives %s, want %s",
						pa, pb, g.Kind, off, symmetry.DecodeOffset(want))
				}
			}
		}
	}
	return nil
}

// decode turns a row-major flat index into a tuple of [0,dim)^rank.
func decode(flat, rank, dim int) []int {
	tuple := make([]int, rank)
	for p := rank - 1; p >= 0; p-- {
		tuple[p] = flat % dim
		flat /= dim
	}
	return tuple
}

func antisymmetricRepeat(groups []symmetry.Group, tuple []int) bool {
	for _, g := range groups {
		if g.Kind != symmetry.Antisymmetric {
			continue
		}
		for a := 0; a < len(g.Positions); a++ {
			for b := a + 1; b < len(g.Positions); b++ {
				if tuple[g.Positions[a]] == tuple[g.Positions[b]] {
					return true
				}
			}
		}
	}
	return false
}
