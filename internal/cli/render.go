package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drkbts/topology/dot"
)

// Accepted render formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// newRenderCmd creates the render command: construct a topology and write it
// as DOT text or a rendered image.
func newRenderCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <spec>",
		Short: "Render a topology as DOT, SVG, or PNG",
		Long: `Render a topology as Graphviz DOT text or a rendered image.

The spec is "kind:dims", e.g. "btorus:4,3". DOT output goes to stdout unless
--output is given; svg and png formats require --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := parseSpec(args[0])
			if err != nil {
				return err
			}
			src := dot.ToDOT(g)
			logger.Debug("emitted DOT", "name", g.Name(), "bytes", len(src))

			var data []byte
			switch format {
			case formatDOT:
				if output == "" {
					fmt.Fprint(cmd.OutOrStdout(), src)
					return nil
				}
				data = []byte(src)
			case formatSVG:
				if data, err = dot.RenderSVG(cmd.Context(), src); err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
			case formatPNG:
				if data, err = dot.RenderPNG(cmd.Context(), src); err != nil {
					return fmt.Errorf("render png: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want %s, %s, or %s)",
					format, formatDOT, formatSVG, formatPNG)
			}

			if output == "" {
				return fmt.Errorf("format %q requires --output", format)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("wrote rendering", "path", output, "format", format, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot (default), svg, png")

	return cmd
}
