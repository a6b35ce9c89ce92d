// Package graph: ring generators.
//
// Contract:
//   - n ≥ 1 (n == 0 fails with ErrInvalidArgument).
//   - Vertices 0..n-1 in ascending order; id equals construction order.
//   - Ring edges i → (i+1) mod n in ascending i, emitted only when n > 1;
//     the bidirectional variant also emits the reverse arc of each step.
//   - Closed-form diameter ⌊n/2⌋ (0 when n ≤ 1) via the shape record.
//
// Complexity: O(n) vertices + O(n) edges (2n bidirectional); O(1) extra space.
package graph

import "fmt"

// NewURing builds a unidirectional ring of n vertices: 0→1→…→(n-1)→0.
func NewURing(n int) (*Graph, error) {
	if n < MinTopologySize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodURing, n, MinTopologySize, ErrInvalidArgument)
	}
	g := New()
	populateRing(g, n, false)
	g.seal(URing, NameURing, []int{n})
	return g, nil
}

// NewBRing builds a bidirectional ring of n vertices: both directions of
// every NewURing edge.
func NewBRing(n int) (*Graph, error) {
	if n < MinTopologySize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBRing, n, MinTopologySize, ErrInvalidArgument)
	}
	g := New()
	populateRing(g, n, true)
	g.seal(BRing, NameBRing, []int{n})
	return g, nil
}

// populateRing fills g with the canonical ring pattern. Vertices first, in
// ascending id order, then edges in ascending i — the stable emission order
// the Cartesian product's vertex encoding relies on.
func populateRing(g *Graph, n int, bidirectional bool) {
	for i := 0; i < n; i++ {
		g.appendVertex(int32(i))
	}
	if n <= 1 {
		// A one-vertex ring has no edges: no self-loop by definition.
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		g.appendEdge(i, j, 0, 0)
		if bidirectional {
			g.appendEdge(j, i, 0, 0)
		}
	}
}
