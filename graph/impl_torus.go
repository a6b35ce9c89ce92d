// Package graph: multidimensional torus generator.
//
// Contract mirrors NewBGrid with bidirectional rings as factors and
// closed-form diameter Σ⌊dᵢ/2⌋.
package graph

import "fmt"

// NewBTorus builds a multidimensional torus from bidirectional rings.
// The display name reflects the canonical dimensions, e.g. NewBTorus with
// {3,4} yields "BTorus[4,3]"; the degenerate case yields "BTorus[]", a
// one-point structure.
func NewBTorus(dims []int) (*Graph, error) {
	canon, err := CanonicalDims(dims)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBTorus, err)
	}
	g := foldProduct(canon, func(n int) *Graph {
		f := New()
		populateRing(f, n, true)
		return f
	})
	g.seal(BTorus, compositeName(NameBTorus, canon), canon)
	return g, nil
}
