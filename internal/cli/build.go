package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drkbts/topology/graph"
)

// newBuildCmd creates the build command: construct a topology and report its
// derived properties.
func newBuildCmd() *cobra.Command {
	var (
		kind    string
		size    int
		dimsStr string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Construct a topology and report its properties",
		Long: `Construct a topology and report its vertex count, edge count, diameter,
and canonical dimensions.

Basic kinds (uring, bring, umesh, bmesh) take --size; composite kinds
(bgrid, btorus) take --dims as a comma-separated list; opg takes neither.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := parseDims(dimsStr)
			if err != nil {
				return err
			}
			if len(dims) == 0 && size > 0 {
				dims = []int{size}
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("building topology", "kind", kind, "dims", dims)

			g, err := buildTopology(kind, dims)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}

			logger.Info("built", "name", g.Name(), "vertices", g.NumVertices(), "edges", g.NumEdges())
			printSummary(cmd.OutOrStdout(), g)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "topology kind: "+kindNames)
	cmd.Flags().IntVarP(&size, "size", "n", 0, "size for ring/chain kinds")
	cmd.Flags().StringVarP(&dimsStr, "dims", "d", "", "comma-separated dimensions for grid/torus kinds")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// printSummary writes the derived views of g in a fixed, parseable layout.
func printSummary(w io.Writer, g *graph.Graph) {
	fmt.Fprintf(w, "name:     %s\n", g.Name())
	fmt.Fprintf(w, "vertices: %d\n", g.NumVertices())
	fmt.Fprintf(w, "edges:    %d\n", g.NumEdges())
	fmt.Fprintf(w, "diameter: %d\n", g.Diameter())

	if d := g.Dims(); d.Len() > 0 {
		parts := make([]string, d.Len())
		for i := range parts {
			v, _ := d.At(i)
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "dims:     %s\n", strings.Join(parts, " "))
	}
}
