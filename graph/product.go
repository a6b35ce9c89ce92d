// Package graph: Cartesian (tensor) product engine.
//
// Product is the binary operator the composite builders fold over. It always
// allocates a fresh Graph; there is no in-place form.
package graph

// Product returns the Cartesian product of g1 and g2.
//
// One result vertex exists per pair (u, v) with u ∈ V(g1), v ∈ V(g2), taken
// in the order of the factors' Vertices views. The pair's identity is encoded
// as u.ID·|V(g2)| + v.ID — by id value, not positional index. Callers must
// keep ids a dense 0..N-1 range for the encoding to be collision-free;
// non-dense or non-zero-based ids yield an internally consistent but
// surprising numbering. Generator outputs always satisfy the precondition.
//
// Edges follow the Cartesian rule, each inheriting its factor edge's payload:
//
//	(u1,v) → (u2,v)  for every edge u1→u2 in g1 and vertex v in g2
//	(u,v1) → (u,v2)  for every vertex u in g1 and edge v1→v2 in g2
//
// so |E| = |E(g1)|·|V(g2)| + |V(g1)|·|E(g2)|. The result is a plain generic
// graph carrying no shape record, named name(g1) + " ⊗ " + name(g2).
// Neither factor is mutated.
//
// Complexity: O(V1·V2 + E1·V2 + V1·E2).
func Product(g1, g2 *Graph) *Graph {
	out := New()
	cols := len(g2.vertices)

	// Vertices in g1-major order, matching the documented encoding.
	for _, u := range g1.vertices {
		for _, v := range g2.vertices {
			out.appendVertex(u.ID*int32(cols) + v.ID)
		}
	}

	// g1 edges replicated across every g2 vertex. The pair (a,b) sits at
	// positional index a·cols + b, independent of id values.
	for _, e := range g1.edges {
		for b := 0; b < cols; b++ {
			out.appendEdge(e.from*cols+b, e.to*cols+b, e.latency, e.bandwidth)
		}
	}

	// g2 edges replicated across every g1 vertex.
	for a := 0; a < len(g1.vertices); a++ {
		for _, e := range g2.edges {
			out.appendEdge(a*cols+e.from, a*cols+e.to, e.latency, e.bandwidth)
		}
	}

	out.name = g1.name + productSeparator + g2.name
	return out
}
