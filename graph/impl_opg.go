// Package graph: one-point graph generator.
package graph

// NewOPG builds the one-point graph: a single vertex 0, no edges, diameter 0.
// It takes no size parameter and cannot fail. OPG is the identity element of
// the Cartesian product: Product(g, NewOPG()) preserves g's vertex and edge
// counts.
// Complexity: O(1).
func NewOPG() *Graph {
	g := New()
	g.appendVertex(0)
	g.seal(OPG, NameOPG, []int{1})
	return g
}
