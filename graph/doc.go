// Package graph models small interconnection-network fabrics as directed
// multigraphs and computes their derived properties, chiefly diameter.
//
// What
//
//   - A Graph is a directed multigraph whose vertices carry caller-assigned
//     int32 identities and whose edges carry an opaque latency/bandwidth
//     payload. The graph itself carries a display name.
//   - Fixed-pattern generators build canonical topologies: unidirectional and
//     bidirectional rings (NewURing, NewBRing), unidirectional and
//     bidirectional chains (NewUMesh, NewBMesh), the one-point graph (NewOPG),
//     and multidimensional composites (NewBGrid, NewBTorus).
//   - Product composes two graphs into their Cartesian (tensor) product.
//   - Diameter reports the longest shortest path, via closed forms for
//     specialized topologies and per-source BFS for everything else.
//
// Mutation policy
//
//	Generator outputs are specialized: they retain a shape record (Dims) and
//	answer Diameter in O(1). The first AddVertex or AddEdge call on a
//	specialized graph performs the mutation and degrades the instance to a
//	generic graph — its name becomes "Generic" and its shape record is
//	discarded. Degradation is terminal.
//
// Error policy
//
//	Constructors fail fast with ErrInvalidArgument on zero sizes; Dims.At
//	fails with ErrOutOfRange. Branch with errors.Is. Structural queries never
//	fail: a disconnected or empty graph has Diameter DiameterUndefined (-1),
//	and AddEdge with a missing endpoint is a silent no-op.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Generators: O(V + E) construction.
//   - Diameter: O(1) on specialized topologies, O(V·(V+E)) generic BFS.
//   - Product: O(V1·V2 + E1·V2 + V1·E2).
//
// The package is single-threaded by design: no Graph instance may be shared
// across goroutines without external synchronization.
package graph
