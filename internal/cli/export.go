// SPDX-License-Identifier: MIT
// Package: shortpath/internal/cli
//
// export.go - the export command: DOT or SVG of a graph with its shortest path.

package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/dot"
)

func (c *CLI) exportCommand() *cobra.Command {
	var (
		f         solveFlags
		output    string
		svg       bool
		graphName string
		color     string
	)

	cmd := &cobra.Command{
		Use:   "export <graph-file>",
		Short: "Write the graph as Graphviz DOT with the shortest path highlighted",
		Long: `Export solves --from → --to and writes the whole graph in DOT notation with
the path edges coloured. With --svg, or an output name ending in .svg, the DOT
is rendered to SVG in-process.`,
		Example: `  shortpath export graph.yaml --from A --to S > path.dot
  shortpath export graph.yaml --from A --to S -o path.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := c.query(cmd, args[0], &f)
			if err != nil {
				return err
			}

			text, err := s.Export(dot.NewExporter(dot.WithGraphName(graphName), dot.WithPathColor(color)))
			if err != nil {
				return err
			}
			data := []byte(text + "\n")

			if svg || strings.EqualFold(filepath.Ext(output), ".svg") {
				if data, err = dot.RenderSVG(cmd.Context(), text); err != nil {
					return err
				}
			}

			if output == "" {
				_, err = c.out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("Wrote %s", output)
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVar(&graphName, "graph-name", dot.DefaultGraphName, "digraph identifier")
	cmd.Flags().StringVar(&color, "color", dot.DefaultPathColor, "colour of path edges")

	return cmd
}
