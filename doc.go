// Package topology builds and analyzes small interconnection-network
// fabrics — rings, chains, multidimensional grids and tori, and arbitrary
// Cartesian compositions of these — as directed graphs with derived
// properties such as diameter.
//
// Everything is organized under focused subpackages:
//
//	graph/ — the directed-multigraph container, topology generators
//	         (URing/BRing/UMesh/BMesh/OPG/BGrid/BTorus), dimension
//	         canonicalization, the Cartesian-product engine, and the
//	         BFS diameter engine
//	dot/   — Graphviz DOT export and SVG/PNG rendering
//	cmd/   — the topology CLI (build, product, render)
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// is NewBRing(4): four vertices, eight directed edges, diameter 2.
//
//	go get github.com/drkbts/topology/graph
package topology
