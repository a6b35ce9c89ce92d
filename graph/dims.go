// Package graph: dimension canonicalization and the shape view.
//
// Both composite builders (NewBGrid, NewBTorus) share one canonical form for
// their dimension list: 1-entries removed, the remainder sorted descending,
// and the empty result replaced by the sentinel [1] meaning "degenerate to
// one point". The canonical sequence is the sole source of truth for the
// composite's name, vertex/edge counts, and diameter.
package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CanonicalDims returns the canonical form of dims: all entries equal to 1
// removed, the remainder sorted in descending order, and [1] when nothing
// remains. Fails with ErrInvalidArgument if any entry is below 1. The input
// slice is not mutated; canonicalization is idempotent.
// Complexity: O(k log k) for k = len(dims).
func CanonicalDims(dims []int) ([]int, error) {
	out := make([]int, 0, len(dims))
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("CanonicalDims: dimension must be ≥ 1, got %d: %w", d, ErrInvalidArgument)
		}
		if d == 1 {
			continue
		}
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) == 0 {
		out = append(out, 1)
	}
	return out, nil
}

// Dims is a read-only view over a specialized topology's shape record.
// For rings, chains and the one-point graph it holds the single size; for
// grids and tori the canonical dimension sequence. A Generic graph has an
// empty view. The view is a snapshot: degrading the graph afterwards does
// not invalidate a Dims already taken.
type Dims struct {
	dims []int
}

// Dims returns the shape view of the graph.
func (g *Graph) Dims() Dims {
	return Dims{dims: g.dims}
}

// Len returns the number of recorded dimensions (0 for Generic graphs).
func (d Dims) Len() int { return len(d.dims) }

// At returns the i-th dimension. Fails with ErrOutOfRange when i is negative
// or not below Len.
func (d Dims) At(i int) (int, error) {
	if i < 0 || i >= len(d.dims) {
		return 0, fmt.Errorf("Dims.At: index %d outside [0,%d): %w", i, len(d.dims), ErrOutOfRange)
	}
	return d.dims[i], nil
}

// compositeName renders the canonical composite label: "<prefix>[]" for the
// degenerate [1] sequence, otherwise "<prefix>[d1,d2,…,dk]" in canonical
// order.
func compositeName(prefix string, canon []int) string {
	if len(canon) == 1 && canon[0] == 1 {
		return prefix + "[]"
	}
	parts := make([]string, len(canon))
	for i, d := range canon {
		parts[i] = strconv.Itoa(d)
	}
	return prefix + "[" + strings.Join(parts, ",") + "]"
}
