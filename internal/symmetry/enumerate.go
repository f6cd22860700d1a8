package symmetry

import (
	"fmt"
	"iter"

	"github.com/born-ml/symtensor/internal/combin"
)

// Enumerate returns every configuration of the given rank in canonical order.
//
// Set partitions are generated as restricted growth strings in lexicographic
// order, so each partition appears exactly once. For a partition with k blocks
// of two or more positions, 2^k configurations follow in counter order from 0
// to 2^k-1, where bit i set makes the i-th block Symmetric and bit i clear
// makes it Antisymmetric. The order is stable across calls.
func Enumerate(rank int) ([]Configuration, error) {
	if rank < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}

	var out []Configuration
	for c := range All(rank) {
		out = append(out, c)
	}
	return out, nil
}

// All streams the configurations of Enumerate in the same order.
// It yields nothing for a negative rank.
func All(rank int) iter.Seq[Configuration] {
	return func(yield func(Configuration) bool) {
		if rank < 0 {
			return
		}
		rgs := make([]int, rank)
		for {
			if !yieldPartition(rank, rgs, yield) {
				return
			}
			if !nextRGS(rgs) {
				return
			}
		}
	}
}

// yieldPartition emits every sign assignment of the partition encoded by rgs.
func yieldPartition(rank int, rgs []int, yield func(Configuration) bool) bool {
	numLabels := 0
	for _, label := range rgs {
		numLabels = max(numLabels, label+1)
	}

	members := make([][]int, numLabels)
	for pos, label := range rgs {
		members[label] = append(members[label], pos)
	}

	var blocks []int // group indices of blocks with two or more positions
	for label, m := range members {
		if len(m) > 1 {
			blocks = append(blocks, label)
		}
	}

	for counter := 0; counter < 1<<len(blocks); counter++ {
		groups := make([]Group, numLabels)
		for label, m := range members {
			groups[label] = Group{Positions: append([]int(nil), m...), Kind: Free}
		}
		for bit, label := range blocks {
			if counter&(1<<bit) != 0 {
				groups[label].Kind = Symmetric
			} else {
				groups[label].Kind = Antisymmetric
			}
		}
		if !yield(Configuration{rank: rank, groups: groups}) {
			return false
		}
	}
	return true
}

// nextRGS advances a restricted growth string to its lexicographic successor.
// It returns false once the last string (0,1,...,n-1) has been passed.
func nextRGS(a []int) bool {
	for i := len(a) - 1; i >= 1; i-- {
		prefixMax := 0
		for _, v := range a[:i] {
			prefixMax = max(prefixMax, v)
		}
		if a[i] <= prefixMax {
			a[i]++
			for j := i + 1; j < len(a); j++ {
				a[j] = 0
			}
			return true
		}
	}
	return false
}

// Count returns the number of configurations Enumerate produces for rank,
// i.e. the sum over all set partitions of 2^(blocks of size >= 2).
//
// It uses the recurrence over the size k of the group containing the last
// position: f(n) = sum_k C(n-1, k-1) * w(k) * f(n-k), with w(1)=1 and w(k)=2.
func Count(rank int) (int, error) {
	if rank < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}

	f := make([]int, rank+1)
	f[0] = 1
	for n := 1; n <= rank; n++ {
		total := 0
		for k := 1; k <= n; k++ {
			ways, ok := Binomial(n-1, k-1)
			if !ok {
				return 0, ErrSizeOverflow
			}
			weight := 2
			if k == 1 {
				weight = 1
			}
			term, ok := combin.Mul(ways, weight)
			if ok {
				term, ok = combin.Mul(term, f[n-k])
			}
			if ok {
				total, ok = combin.Add(total, term)
			}
			if !ok {
				return 0, fmt.Errorf("%w: configuration count for rank %d", ErrSizeOverflow, rank)
			}
		}
		f[n] = total
	}
	return f[rank], nil
}
