// Package graph: multidimensional grid generator.
//
// Contract:
//   - Every dimension ≥ 1 (a zero entry fails with ErrInvalidArgument).
//   - Dimensions are canonicalized first (CanonicalDims): 1s dropped,
//     descending order, [1] when nothing remains.
//   - The structure is the left-associative Cartesian-product fold of
//     bidirectional chains over the canonical sequence.
//   - Closed-form diameter Σ(dᵢ-1) via the shape record; vertex count Π dᵢ.
//
// Complexity: O(Π dᵢ · k) vertices/edges for k canonical dimensions.
package graph

import "fmt"

// NewBGrid builds a multidimensional grid from bidirectional chains.
// The display name reflects the canonical dimensions, e.g. NewBGrid with
// {3,1,5,1,2} yields "BGrid[5,3,2]"; the degenerate case yields "BGrid[]",
// a one-point structure.
func NewBGrid(dims []int) (*Graph, error) {
	canon, err := CanonicalDims(dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBGrid, err)
	}
	g := foldProduct(canon, func(n int) *Graph {
		f := New()
		populateMesh(f, n, true)
		return f
	})
	g.seal(BGrid, compositeName(NameBGrid, canon), canon)
	return g, nil
}

// foldProduct folds base factors over the canonical sequence with Product,
// left-associatively: base(d1) ⊗ base(d2) ⊗ … ⊗ base(dk). The iterative
// accumulator discards each intermediate as soon as the next fold step
// consumes it. For the degenerate sequence [1] the fold is just base(1), a
// single vertex.
func foldProduct(canon []int, base func(n int) *Graph) *Graph {
	acc := base(canon[0])
	for _, d := range canon[1:] {
		acc = Product(acc, base(d))
	}
	return acc
}
