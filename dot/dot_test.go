package dot_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drkbts/topology/dot"
	"github.com/drkbts/topology/graph"
)

func TestToDOT_ContainsEveryVertexAndEdge(t *testing.T) {
	g, err := graph.NewURing(4)
	require.NoError(t, err)

	out := dot.ToDOT(g)

	assert.True(t, strings.HasPrefix(out, "digraph topology {"))
	assert.Contains(t, out, `label="URing";`)
	for _, id := range g.Vertices() {
		assert.Contains(t, out, fmt.Sprintf("  %d;\n", id))
	}
	for _, e := range g.Edges() {
		assert.Contains(t, out, fmt.Sprintf("  %d -> %d;\n", e.From, e.To))
	}
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestToDOT_LatencyLabel(t *testing.T) {
	g := graph.New()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddEdge(0, 1, graph.WithLatency(0.5))

	out := dot.ToDOT(g)
	assert.Contains(t, out, `0 -> 1 [label="0.5"];`)
}

func TestToDOT_EmptyGraph(t *testing.T) {
	out := dot.ToDOT(graph.New())
	assert.Contains(t, out, `label="Generic";`)
	assert.NotContains(t, out, "->")
}
