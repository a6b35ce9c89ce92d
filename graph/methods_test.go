// Package graph_test verifies the graph container: insertion views, silent
// no-op edge semantics, duplicate-id ambiguity, and the mutation policy.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drkbts/topology/graph"
)

func TestNew_EmptyGeneric(t *testing.T) {
	g := graph.New()

	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, graph.NameGeneric, g.Name())
	assert.Equal(t, graph.Generic, g.Kind())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.Dims().Len())
}

func TestAddVertex_InsertionOrder(t *testing.T) {
	g := graph.New()
	for _, id := range []int32{7, 3, 5} {
		g.AddVertex(id)
	}

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, []int32{7, 3, 5}, g.Vertices())
}

func TestAddEdge_BothEndpointsPresent(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddEdge(0, 1)

	require.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []graph.Edge{{From: 0, To: 1}}, g.Edges())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
}

func TestAddEdge_MissingEndpointIsSilentNoOp(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)

	g.AddEdge(0, 99) // target absent
	g.AddEdge(99, 0) // source absent
	g.AddEdge(41, 42)

	assert.Equal(t, 0, g.NumEdges())
}

func TestAddEdge_ParallelEdgesPermitted(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1)

	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []int32{1, 1}, g.Neighbors(0))
}

func TestAddEdge_DuplicateIDFirstMatchWins(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(0) // duplicate id: lookups resolve to the first insertion
	g.AddVertex(1)
	g.AddEdge(0, 1)

	require.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []graph.Edge{{From: 0, To: 1}}, g.Edges())
	// Neighbors of id 0 also resolves to the first vertex.
	assert.Equal(t, []int32{1}, g.Neighbors(0))
}

func TestAddEdge_PayloadOptions(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddEdge(0, 1, graph.WithLatency(1.5), graph.WithBandwidth(40))

	es := g.Edges()
	require.Len(t, es, 1)
	assert.Equal(t, 1.5, es[0].Latency)
	assert.Equal(t, 40.0, es[0].Bandwidth)
}

func TestHasVertexAndNeighbors(t *testing.T) {
	g, err := graph.NewUMesh(3)
	require.NoError(t, err)

	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasVertex(2))
	assert.False(t, g.HasVertex(3))
	assert.Equal(t, []int32{1}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(2)) // chain tail has no outgoing edges
	assert.Nil(t, g.Neighbors(404))
}

// TestMutationPolicy_DegradeToGeneric exercises the mutation law: one
// AddVertex or AddEdge on any specialized topology performs the mutation and
// turns the instance generic, discarding its shape record.
func TestMutationPolicy_DegradeToGeneric(t *testing.T) {
	build := map[string]func(t *testing.T) *graph.Graph{
		"URing": func(t *testing.T) *graph.Graph {
			g, err := graph.NewURing(4)
			require.NoError(t, err)
			return g
		},
		"BRing": func(t *testing.T) *graph.Graph {
			g, err := graph.NewBRing(4)
			require.NoError(t, err)
			return g
		},
		"UMesh": func(t *testing.T) *graph.Graph {
			g, err := graph.NewUMesh(4)
			require.NoError(t, err)
			return g
		},
		"BMesh": func(t *testing.T) *graph.Graph {
			g, err := graph.NewBMesh(4)
			require.NoError(t, err)
			return g
		},
		"OPG": func(t *testing.T) *graph.Graph {
			return graph.NewOPG()
		},
		"BGrid": func(t *testing.T) *graph.Graph {
			g, err := graph.NewBGrid([]int{3, 2})
			require.NoError(t, err)
			return g
		},
		"BTorus": func(t *testing.T) *graph.Graph {
			g, err := graph.NewBTorus([]int{3, 2})
			require.NoError(t, err)
			return g
		},
	}

	t.Run("AddVertex", func(t *testing.T) {
		for name, mk := range build {
			t.Run(name, func(t *testing.T) {
				g := mk(t)
				before := g.NumVertices()
				g.AddVertex(100)

				assert.Equal(t, graph.NameGeneric, g.Name())
				assert.Equal(t, graph.Generic, g.Kind())
				assert.Equal(t, before+1, g.NumVertices())
				assert.True(t, g.HasVertex(100))
				assert.Equal(t, 0, g.Dims().Len())
			})
		}
	})

	t.Run("AddEdge", func(t *testing.T) {
		for name, mk := range build {
			t.Run(name, func(t *testing.T) {
				g := mk(t)
				before := g.NumEdges()
				g.AddEdge(0, 0, graph.WithLatency(2))

				assert.Equal(t, graph.NameGeneric, g.Name())
				assert.Equal(t, graph.Generic, g.Kind())
				assert.Equal(t, before+1, g.NumEdges())
				assert.True(t, g.HasEdge(0, 0))
			})
		}
	})

	// Even a no-op AddEdge abandons the fixed-structure contract.
	t.Run("NoOpAddEdgeStillDegrades", func(t *testing.T) {
		g, err := graph.NewURing(4)
		require.NoError(t, err)
		g.AddEdge(0, 99)

		assert.Equal(t, 4, g.NumEdges())
		assert.Equal(t, graph.NameGeneric, g.Name())
		assert.Equal(t, graph.Generic, g.Kind())
	})

	// Generic is terminal: further mutation keeps the generic state.
	t.Run("GenericIsTerminal", func(t *testing.T) {
		g, err := graph.NewBRing(3)
		require.NoError(t, err)
		g.AddVertex(10)
		g.AddVertex(11)
		g.AddEdge(10, 11)

		assert.Equal(t, graph.NameGeneric, g.Name())
		assert.Equal(t, graph.Generic, g.Kind())
	})
}
