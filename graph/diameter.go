// Package graph: diameter engine.
//
// Diameter dispatches on the topology tag: specialized kinds answer with
// their closed form in O(1), everything else runs per-source BFS. The BFS
// path recomputes from scratch on every read — there is no cache, because a
// generic graph may be mutated between reads.
package graph

// Diameter returns the maximum shortest-path distance between any two
// vertices, or DiameterUndefined (-1) when the graph is empty or not strongly
// connected in the directed sense.
//
// Closed forms, valid exactly while the shape record holds:
//
//	ring (uni/bi):  0 if n ≤ 1, else ⌊n/2⌋
//	chain (uni/bi): 0 if n ≤ 1, else n-1
//	one-point:      0
//	grid:           Σ(dᵢ-1)
//	torus:          Σ⌊dᵢ/2⌋
//
// Complexity: O(1) specialized, O(V·(V+E)) generic.
func (g *Graph) Diameter() int {
	switch g.kind {
	case URing, BRing:
		if n := g.dims[0]; n > 1 {
			return n / 2
		}
		return 0
	case UMesh, BMesh:
		if n := g.dims[0]; n > 1 {
			return n - 1
		}
		return 0
	case OPG:
		return 0
	case BGrid:
		sum := 0
		for _, d := range g.dims {
			sum += d - 1
		}
		return sum
	case BTorus:
		sum := 0
		for _, d := range g.dims {
			sum += d / 2
		}
		return sum
	default:
		return g.bfsDiameter()
	}
}

// bfsDiameter computes the diameter by running one breadth-first search per
// source vertex over outgoing edges and taking the maximum eccentricity.
// Traversal works on positional indices, so duplicate vertex ids cannot
// confuse it. If any BFS fails to reach every vertex the graph is not
// strongly connected and the result is DiameterUndefined.
func (g *Graph) bfsDiameter() int {
	n := len(g.vertices)
	if n == 0 {
		return DiameterUndefined
	}
	if n == 1 {
		return 0
	}

	// Out-adjacency by positional index, rebuilt lazily per read.
	adj := make([][]int, n)
	for _, e := range g.edges {
		adj[e.from] = append(adj[e.from], e.to)
	}

	dist := make([]int, n)
	queue := make([]int, 0, n)
	diameter := 0

	for src := 0; src < n; src++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[src] = 0
		queue = append(queue[:0], src)
		reached := 1
		ecc := 0

		// Standard FIFO sweep; head index avoids re-slicing the queue.
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj[u] {
				if dist[v] >= 0 {
					continue
				}
				dist[v] = dist[u] + 1
				if dist[v] > ecc {
					ecc = dist[v]
				}
				queue = append(queue, v)
				reached++
			}
		}

		if reached != n {
			return DiameterUndefined
		}
		if ecc > diameter {
			diameter = ecc
		}
	}

	return diameter
}
