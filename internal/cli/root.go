package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the topology CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into a charmbracelet logger that
// travels on the command context, so every subcommand logs through the same
// sink at the selected level.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "topology",
		Short:        "Build and analyze interconnection-network topologies",
		Long:         `topology constructs ring, chain, grid, and torus fabrics, composes them via Cartesian products, and reports derived properties such as graph diameter.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newProductCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}
