// Package graph_test: runnable documentation examples.
package graph_test

import (
	"fmt"

	"github.com/drkbts/topology/graph"
)

// ExampleNewBRing builds a bidirectional ring and reads its derived views.
func ExampleNewBRing() {
	g, err := graph.NewBRing(6)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println(g.Name())
	fmt.Println(g.NumVertices(), g.NumEdges())
	fmt.Println(g.Diameter())
	// Output:
	// BRing
	// 6 12
	// 3
}

// ExampleNewBGrid shows dimension canonicalization: 1-entries vanish and the
// rest sort descending before the grid is composed.
func ExampleNewBGrid() {
	g, err := graph.NewBGrid([]int{3, 1, 5, 1, 2})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println(g.Name())
	fmt.Println(g.NumVertices())
	fmt.Println(g.Diameter())
	// Output:
	// BGrid[5,3,2]
	// 30
	// 7
}

// ExampleProduct composes two chains into their Cartesian product.
func ExampleProduct() {
	a, _ := graph.NewUMesh(3)
	b, _ := graph.NewUMesh(3)

	p := graph.Product(a, b)
	fmt.Println(p.Name())
	fmt.Println(p.NumVertices(), p.NumEdges())
	// Output:
	// UMesh ⊗ UMesh
	// 9 12
}

// ExampleGraph_AddVertex demonstrates the mutation policy: the first
// structural change degrades a specialized topology to a generic graph.
func ExampleGraph_AddVertex() {
	g, _ := graph.NewURing(4)
	fmt.Println(g.Name(), g.Diameter())

	g.AddVertex(4)
	fmt.Println(g.Name(), g.Diameter())
	// Output:
	// URing 2
	// Generic -1
}
