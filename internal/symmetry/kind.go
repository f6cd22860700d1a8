// Package symmetry implements compact storage layouts for tensors whose index
// positions are partitioned into symmetric and antisymmetric blocks.
//
// A Configuration partitions the index positions 0..R-1 into groups. Every
// group of two or more positions is either Symmetric (value order irrelevant)
// or Antisymmetric (value order matters up to sign, repeated values force the
// element to zero); single positions are Free axes. For a dimension D a
// Layout maps every raw index tuple onto a signed Offset into a minimal
// backing store holding only the algebraically independent components.
//
// All functions in this package are pure and safe for concurrent use.
// Configurations are immutable once constructed.
package symmetry

// Kind is the exchange symmetry carried by a group of index positions.
type Kind int

// Supported group kinds.
const (
	Free Kind = iota
	Symmetric
	Antisymmetric
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case Symmetric:
		return "symmetric"
	case Antisymmetric:
		return "antisymmetric"
	default:
		return "unknown"
	}
}

// Label returns the one-letter label used in configuration names.
func (k Kind) Label() string {
	switch k {
	case Free:
		return "F"
	case Symmetric:
		return "S"
	case Antisymmetric:
		return "A"
	default:
		return "?"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "free":
		return Free, true
	case "symmetric":
		return Symmetric, true
	case "antisymmetric":
		return Antisymmetric, true
	default:
		return 0, false
	}
}
