// Package graph: Graph method implementations.
//
// This file provides the structural mutators (AddVertex, AddEdge), the
// mutation policy that degrades specialized topologies to Generic, and the
// read-only views over vertices and edges. Vertices and edges live in plain
// slices so that container order is exactly insertion order, which the
// Cartesian product's vertex encoding depends on.
package graph

// AddVertex inserts a new vertex carrying id.
//
// Ids are not checked for uniqueness: inserting a duplicate id is legal and
// makes subsequent AddEdge lookups for that id ambiguous (the earliest
// inserted vertex wins). On a specialized topology this call also degrades
// the graph to Generic (see degrade).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int32) {
	g.vertices = append(g.vertices, Vertex{ID: id})
	g.degrade()
}

// AddEdge inserts a directed edge from the vertex with id i to the vertex
// with id j. Both endpoints are located by a linear scan in insertion order;
// if either id is absent the call is a silent no-op, not an error. Parallel
// edges are permitted.
//
// The mutation policy applies unconditionally: even a no-op AddEdge on a
// specialized topology degrades it to Generic, because the caller has
// abandoned the fixed-structure contract.
// Complexity: O(V) for the endpoint scan.
func (g *Graph) AddEdge(i, j int32, opts ...EdgeOption) {
	defer g.degrade()

	ui, ok := g.findVertex(i)
	if !ok {
		return
	}
	vi, ok := g.findVertex(j)
	if !ok {
		return
	}

	e := edge{from: ui, to: vi}
	for _, opt := range opts {
		opt(&e)
	}
	g.edges = append(g.edges, e)
}

// degrade applies the mutation policy: a structurally mutated specialized
// topology becomes a plain generic graph. The shape record is discarded and
// the display name is overwritten; the transition is terminal.
func (g *Graph) degrade() {
	if g.kind == Generic {
		return
	}
	g.kind = Generic
	g.name = NameGeneric
	g.dims = nil
}

// findVertex returns the positional index of the first vertex whose id equals
// id, in insertion order.
func (g *Graph) findVertex(id int32) (int, bool) {
	for i := range g.vertices {
		if g.vertices[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// NumVertices returns the vertex count. Complexity: O(1).
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the edge count. Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// Name returns the display name: a canonical topology label, a composite
// label, a Product join, or "Generic".
func (g *Graph) Name() string { return g.name }

// Kind returns the topology tag. Generator outputs keep their specialized
// kind until the first structural mutation.
func (g *Graph) Kind() Kind { return g.kind }

// Vertices returns the vertex ids in container (insertion) order.
// Complexity: O(V).
func (g *Graph) Vertices() []int32 {
	out := make([]int32, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].ID
	}
	return out
}

// Edges returns the edges in container (insertion) order, with endpoints
// reported as vertex ids. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{
			From:      g.vertices[e.from].ID,
			To:        g.vertices[e.to].ID,
			Latency:   e.latency,
			Bandwidth: e.bandwidth,
		}
	}
	return out
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(V).
func (g *Graph) HasVertex(id int32) bool {
	_, ok := g.findVertex(id)
	return ok
}

// HasEdge reports whether at least one edge runs from id i to id j.
// Endpoints are compared by id, so with duplicate ids this answers for any
// matching pair. Complexity: O(E).
func (g *Graph) HasEdge(i, j int32) bool {
	for _, e := range g.edges {
		if g.vertices[e.from].ID == i && g.vertices[e.to].ID == j {
			return true
		}
	}
	return false
}

// Neighbors returns the ids of all vertices reachable from id over one
// outgoing edge, in edge insertion order. Returns nil when the vertex is
// absent. Duplicates are preserved for parallel edges. Complexity: O(V + E).
func (g *Graph) Neighbors(id int32) []int32 {
	ui, ok := g.findVertex(id)
	if !ok {
		return nil
	}
	var out []int32
	for _, e := range g.edges {
		if e.from == ui {
			out = append(out, g.vertices[e.to].ID)
		}
	}
	return out
}

// appendVertex inserts a vertex without touching the mutation policy.
// Generators and Product use it while populating fresh graphs.
func (g *Graph) appendVertex(id int32) {
	g.vertices = append(g.vertices, Vertex{ID: id})
}

// appendEdge inserts an edge by positional indices without touching the
// mutation policy. Callers guarantee the indices are in range.
func (g *Graph) appendEdge(from, to int, latency, bandwidth float64) {
	g.edges = append(g.edges, edge{from: from, to: to, latency: latency, bandwidth: bandwidth})
}
