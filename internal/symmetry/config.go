package symmetry

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Group is a set of index positions sharing one exchange symmetry.
// Positions are kept in ascending order.
type Group struct {
	Positions []int
	Kind      Kind
}

// Size returns the number of positions in the group.
func (g Group) Size() int {
	return len(g.Positions)
}

func (g Group) clone() Group {
	return Group{Positions: slices.Clone(g.Positions), Kind: g.Kind}
}

// Configuration is an ordered partition of the positions 0..Rank-1 into groups.
// The group order is the discovery order fixed at enumeration time and drives
// the mixed-radix composition of offsets.
//
// A Configuration is immutable: accessors return copies.
type Configuration struct {
	rank   int
	groups []Group
}

// NewConfiguration builds a configuration from explicit groups.
//
// Groups must be pairwise disjoint and cover 0..rank-1 exactly once. A group of
// one position must be Free; a group of two or more positions must be
// Symmetric or Antisymmetric. Positions inside a group may be given in any
// order and are stored ascending.
func NewConfiguration(rank int, groups ...Group) (Configuration, error) {
	if rank < 0 {
		return Configuration{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}

	seen := make([]bool, rank)
	covered := 0
	out := make([]Group, 0, len(groups))
	for gi, g := range groups {
		if len(g.Positions) == 0 {
			return Configuration{}, fmt.Errorf("%w: group %d is empty", ErrConfigurationInconsistent, gi)
		}
		switch {
		case len(g.Positions) == 1 && g.Kind != Free:
			return Configuration{}, fmt.Errorf("%w: group %d has one position but kind %s",
				ErrConfigurationInconsistent, gi, g.Kind)
		case len(g.Positions) > 1 && g.Kind != Symmetric && g.Kind != Antisymmetric:
			return Configuration{}, fmt.Errorf("%w: group %d has %d positions but kind %s",
				ErrConfigurationInconsistent, gi, len(g.Positions), g.Kind)
		}
		for _, p := range g.Positions {
			if p < 0 || p >= rank {
				return Configuration{}, fmt.Errorf("%w: position %d outside [0,%d)",
					ErrConfigurationInconsistent, p, rank)
			}
			if seen[p] {
				return Configuration{}, fmt.Errorf("%w: position %d appears twice",
					ErrConfigurationInconsistent, p)
			}
			seen[p] = true
			covered++
		}
		c := g.clone()
		slices.Sort(c.Positions)
		out = append(out, c)
	}
	if covered != rank {
		return Configuration{}, fmt.Errorf("%w: groups cover %d of %d positions",
			ErrConfigurationInconsistent, covered, rank)
	}

	return Configuration{rank: rank, groups: out}, nil
}

// Rank returns the number of index positions.
func (c Configuration) Rank() int {
	return c.rank
}

// NumGroups returns the number of groups, free axes included.
func (c Configuration) NumGroups() int {
	return len(c.groups)
}

// Group returns a copy of the i-th group in discovery order.
func (c Configuration) Group(i int) Group {
	return c.groups[i].clone()
}

// Groups returns a copy of all groups in discovery order.
func (c Configuration) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.clone()
	}
	return out
}

// NumBlocks returns the number of symmetric and antisymmetric blocks.
func (c Configuration) NumBlocks() int {
	n := 0
	for _, g := range c.groups {
		if g.Kind != Free {
			n++
		}
	}
	return n
}

// NumFree returns the number of free axes.
func (c Configuration) NumFree() int {
	return len(c.groups) - c.NumBlocks()
}

// Equal reports whether two configurations have identical groups in identical order.
func (c Configuration) Equal(other Configuration) bool {
	if c.rank != other.rank || len(c.groups) != len(other.groups) {
		return false
	}
	for i := range c.groups {
		if c.groups[i].Kind != other.groups[i].Kind ||
			!slices.Equal(c.groups[i].Positions, other.groups[i].Positions) {
			return false
		}
	}
	return true
}

// BlockDescription is the structural summary of one symmetric or antisymmetric block.
type BlockDescription struct {
	Positions []int
	Kind      Kind
}

// Description is the structural summary of a configuration, used to name and
// label generated types.
type Description struct {
	Rank     int
	Blocks   []BlockDescription
	FreeAxes []int
}

// Describe returns the structural summary of the configuration.
func (c Configuration) Describe() Description {
	d := Description{Rank: c.rank, Blocks: []BlockDescription{}, FreeAxes: []int{}}
	for _, g := range c.groups {
		if g.Kind == Free {
			d.FreeAxes = append(d.FreeAxes, g.Positions[0])
			continue
		}
		d.Blocks = append(d.Blocks, BlockDescription{Positions: slices.Clone(g.Positions), Kind: g.Kind})
	}
	return d
}

// Name returns a stable identifier-safe label such as "A01_F2_S34".
// The rank-0 configuration has an empty name.
func (c Configuration) Name() string {
	parts := make([]string, len(c.groups))
	for i, g := range c.groups {
		parts[i] = g.Kind.Label() + joinPositions(g.Positions, c.rank > 10)
	}
	return strings.Join(parts, "_")
}

// String returns a readable form such as "{0,1}A {2} {3,4}S".
func (c Configuration) String() string {
	if len(c.groups) == 0 {
		return "{}"
	}
	var sb strings.Builder
	for i, g := range c.groups {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('{')
		for j, p := range g.Positions {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(p))
		}
		sb.WriteByte('}')
		if g.Kind != Free {
			sb.WriteString(g.Kind.Label())
		}
	}
	return sb.String()
}

func joinPositions(positions []int, separated bool) string {
	var sb strings.Builder
	for i, p := range positions {
		if separated && i > 0 {
			sb.WriteByte('x')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}
