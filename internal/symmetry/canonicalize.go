package symmetry

// Canonicalize sorts the values of one group into decreasing order in place
// using adjacent transpositions.
//
// For an Antisymmetric group, flip reports whether an odd number of swaps was
// needed, and zero reports a repeated value (the element is identically zero);
// sorting stops at the first repeat. Symmetric groups are sorted without
// tracking orientation, and Free groups are left untouched.
func Canonicalize(values []int, kind Kind) (flip, zero bool) {
	if kind == Free {
		return false, false
	}
	anti := kind == Antisymmetric

	// Bubble sort: the final pass compares every adjacent pair of the sorted
	// sequence, so any repeated value is seen as an equal neighbour.
	for end := len(values) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			switch {
			case values[j] < values[j+1]:
				values[j], values[j+1] = values[j+1], values[j]
				flip = !flip
				swapped = true
			case anti && values[j] == values[j+1]:
				return false, true
			}
		}
		if !swapped {
			break
		}
	}
	if !anti {
		flip = false
	}
	return flip, false
}

// combinadic ranks a canonical (decreasing) group into [0, count) via the
// combinatorial number system. Symmetric values are first shifted onto a
// strictly decreasing sequence.
func combinadic(sorted []int, kind Kind) int {
	g := len(sorted)
	r := 0
	for k, v := range sorted {
		if kind == Symmetric {
			v += g - 1 - k
		}
		r += Choose(v, g-k)
	}
	return r
}

// uncombinadic is the inverse of combinadic for a group of size g over
// dimension dim. It fills out with a decreasing sequence.
func uncombinadic(local, dim int, kind Kind, out []int) {
	g := len(out)
	upper := dim - 1
	if kind == Symmetric {
		upper += g - 1
	}
	rem := local
	for k := range out {
		kk := g - k
		c := upper
		for Choose(c, kk) > rem {
			c--
		}
		rem -= Choose(c, kk)
		out[k] = c
		upper = c - 1
	}
	if kind == Symmetric {
		for k := range out {
			out[k] -= g - 1 - k
		}
	}
}
