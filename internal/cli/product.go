package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drkbts/topology/graph"
)

// newProductCmd creates the product command: compose two topologies via the
// Cartesian product and report the result.
func newProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product <left> <right>",
		Short: "Compose two topologies via the Cartesian product",
		Long: `Compose two topologies via the Cartesian (tensor) product and report the
result's properties.

Each factor is a compact spec "kind:dims", e.g.:

  topology product bring:8 bmesh:4
  topology product bgrid:3,3 opg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g1, err := parseSpec(args[0])
			if err != nil {
				return fmt.Errorf("left factor: %w", err)
			}
			g2, err := parseSpec(args[1])
			if err != nil {
				return fmt.Errorf("right factor: %w", err)
			}

			p := graph.Product(g1, g2)
			logger.Info("composed", "name", p.Name(),
				"vertices", p.NumVertices(), "edges", p.NumEdges())
			logger.Debug("product law",
				"V1*V2", g1.NumVertices()*g2.NumVertices(),
				"V1*E2+E1*V2", g1.NumVertices()*g2.NumEdges()+g1.NumEdges()*g2.NumVertices())

			printSummary(cmd.OutOrStdout(), p)
			return nil
		},
	}

	return cmd
}
