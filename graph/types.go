// Package graph: central Graph, Vertex, and Edge types.
//
// This file declares the directed-multigraph container, the topology tag
// carried alongside it, sentinel errors, and the New constructor.
package graph

import "errors"

// Sentinel errors for graph construction and shape access.
var (
	// ErrInvalidArgument indicates a zero or otherwise invalid size or
	// dimension passed to a topology constructor.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrOutOfRange indicates a dimension-index access beyond the
	// canonicalized sequence length.
	ErrOutOfRange = errors.New("graph: index out of range")
)

// Kind tags the topology family a Graph was generated from.
// A Kind other than Generic guarantees the structural invariant of its
// generator still holds, which is what the closed-form Diameter shortcuts
// rely on. The first structural mutation resets the tag to Generic.
type Kind uint8

// Topology kinds, in generator order.
const (
	// Generic is an unconstrained graph: directly constructed via New, a
	// Product result, or a degraded specialized topology.
	Generic Kind = iota
	// URing is a unidirectional ring.
	URing
	// BRing is a bidirectional ring.
	BRing
	// UMesh is a unidirectional linear chain.
	UMesh
	// BMesh is a bidirectional linear chain.
	BMesh
	// OPG is the one-point graph.
	OPG
	// BGrid is a multidimensional grid composed of bidirectional chains.
	BGrid
	// BTorus is a multidimensional torus composed of bidirectional rings.
	BTorus
)

// String returns the canonical label of the kind.
func (k Kind) String() string {
	switch k {
	case URing:
		return NameURing
	case BRing:
		return NameBRing
	case UMesh:
		return NameUMesh
	case BMesh:
		return NameBMesh
	case OPG:
		return NameOPG
	case BGrid:
		return NameBGrid
	case BTorus:
		return NameBTorus
	default:
		return NameGeneric
	}
}

// Vertex is a node carrying its caller-assigned identity.
// Identities are not checked for uniqueness; duplicate ids make AddEdge
// lookups ambiguous (first match in insertion order wins).
type Vertex struct {
	ID int32
}

// Edge is the public view of a directed edge: endpoint ids plus the opaque
// latency/bandwidth payload. No algorithm in this package reads the payload.
type Edge struct {
	From      int32
	To        int32
	Latency   float64
	Bandwidth float64
}

// edge is the internal edge record. Endpoints are positional indices into the
// vertex slice, not ids, so traversal stays well-defined even when vertex ids
// collide.
type edge struct {
	from, to  int
	latency   float64
	bandwidth float64
}

// EdgeOption configures the payload of an edge when it is added.
type EdgeOption func(*edge)

// WithLatency sets the latency attribute of the new edge.
func WithLatency(l float64) EdgeOption {
	return func(e *edge) { e.latency = l }
}

// WithBandwidth sets the bandwidth attribute of the new edge.
func WithBandwidth(b float64) EdgeOption {
	return func(e *edge) { e.bandwidth = b }
}

// Graph is the in-memory directed multigraph.
//
// Vertices and edges are kept in insertion order; Vertices and Edges views
// report them in that order. kind and dims form the shape record of
// specialized topologies and are reset by the mutation policy (methods.go).
//
// Graph is not safe for concurrent use.
type Graph struct {
	name string
	kind Kind
	dims []int // shape record; nil for Generic

	vertices []Vertex
	edges    []edge
}

// New creates an empty generic Graph named "Generic".
// Complexity: O(1).
func New() *Graph {
	return &Graph{name: NameGeneric, kind: Generic}
}

// seal stamps a freshly populated graph as a specialized topology.
// Generators call it exactly once, after all structure is in place.
func (g *Graph) seal(kind Kind, name string, dims []int) {
	g.kind = kind
	g.name = name
	g.dims = dims
}
