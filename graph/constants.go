// Package graph defines shared constants used by the topology generators,
// ensuring consistent naming and validation across all constructors.
package graph

//-----------------------------------------------------------------------------
// Canonical topology names
//   A Graph's name is always one of these labels, a composite label built by
//   compositeName, or a Product join of any of them.
//-----------------------------------------------------------------------------

const (
	// NameGeneric labels every unconstrained graph, including degraded ones.
	NameGeneric = "Generic"
	// NameURing labels unidirectional rings.
	NameURing = "URing"
	// NameBRing labels bidirectional rings.
	NameBRing = "BRing"
	// NameUMesh labels unidirectional chains.
	NameUMesh = "UMesh"
	// NameBMesh labels bidirectional chains.
	NameBMesh = "BMesh"
	// NameOPG labels the one-point graph.
	NameOPG = "OPG"
	// NameBGrid prefixes grid composite labels, e.g. "BGrid[5,3,2]".
	NameBGrid = "BGrid"
	// NameBTorus prefixes torus composite labels, e.g. "BTorus[4,3]".
	NameBTorus = "BTorus"
)

//-----------------------------------------------------------------------------
// Constructor method tags
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodURing  = "NewURing"
	methodBRing  = "NewBRing"
	methodUMesh  = "NewUMesh"
	methodBMesh  = "NewBMesh"
	methodBGrid  = "NewBGrid"
	methodBTorus = "NewBTorus"
)

//-----------------------------------------------------------------------------
// Size minima and sentinels
//-----------------------------------------------------------------------------

// MinTopologySize is the smallest valid size for ring and chain generators.
// A size of zero is rejected with ErrInvalidArgument; size one degenerates to
// a single vertex with no edges.
const MinTopologySize = 1

// DiameterUndefined is the Diameter value reported for an empty graph or a
// graph that is not strongly connected.
const DiameterUndefined = -1

// productSeparator joins factor names in Cartesian-product results.
const productSeparator = " ⊗ "
