package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/drkbts/topology/graph"
)

// ToDOT converts a topology graph to Graphviz DOT format.
// Vertices are emitted in container order, named by their int32 id; the
// graph's display name becomes the diagram label. Edges carry a latency
// label when the payload is set.
//
// Duplicate vertex ids collapse into a single DOT node: DOT identifies nodes
// by name, so the emission mirrors the id-keyed view, not the internal
// storage.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph topology {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", g.Name())
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d;\n", id)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Latency != 0 {
			fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", e.From, e.To, fmt.Sprintf("%g", e.Latency))
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dotSrc string) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using the embedded Graphviz engine.
func RenderPNG(ctx context.Context, dotSrc string) ([]byte, error) {
	return render(ctx, dotSrc, graphviz.PNG)
}

func render(ctx context.Context, dotSrc string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
