// Package graph: chain (1-D mesh) generators.
//
// Contract:
//   - n ≥ 1 (n == 0 fails with ErrInvalidArgument).
//   - Vertices 0..n-1 in ascending order; id equals construction order.
//   - Chain edges i → i+1 for i in [0, n-2] in ascending i; the
//     bidirectional variant also emits the reverse arc of each step.
//   - Closed-form diameter n-1 (0 when n ≤ 1) via the shape record.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
package graph

import "fmt"

// NewUMesh builds a unidirectional chain of n vertices: 0→1→…→(n-1).
func NewUMesh(n int) (*Graph, error) {
	if n < MinTopologySize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodUMesh, n, MinTopologySize, ErrInvalidArgument)
	}
	g := New()
	populateMesh(g, n, false)
	g.seal(UMesh, NameUMesh, []int{n})
	return g, nil
}

// NewBMesh builds a bidirectional chain of n vertices: both directions of
// every NewUMesh edge.
func NewBMesh(n int) (*Graph, error) {
	if n < MinTopologySize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBMesh, n, MinTopologySize, ErrInvalidArgument)
	}
	g := New()
	populateMesh(g, n, true)
	g.seal(BMesh, NameBMesh, []int{n})
	return g, nil
}

// populateMesh fills g with the canonical chain pattern: vertices in
// ascending id order, then segment edges in ascending i.
func populateMesh(g *Graph, n int, bidirectional bool) {
	for i := 0; i < n; i++ {
		g.appendVertex(int32(i))
	}
	for i := 0; i+1 < n; i++ {
		g.appendEdge(i, i+1, 0, 0)
		if bidirectional {
			g.appendEdge(i+1, i, 0, 0)
		}
	}
}
