// SPDX-License-Identifier: MIT
// Package: shortpath/internal/cli
//
// demo.go - runs the lecture fixture through every algorithm.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/solver"
)

func (c *CLI) demoCommand() *cobra.Command {
	var (
		small    bool
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in lecture graph with every algorithm",
		Long: `Demo builds the 18-vertex lecture graph (or the 4-vertex one with --small),
solves it with all three algorithms and prints each shortest path side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			fixture, target := builder.Lecture(), "S"
			if small {
				fixture, target = builder.LectureSmall(), "D"
			}
			if to != "" {
				target = to
			}

			g, err := builder.BuildGraph(nil, fixture)
			if err != nil {
				return err
			}
			src, err := lookup(g, from)
			if err != nil {
				return err
			}
			dst, err := lookup(g, target)
			if err != nil {
				return err
			}
			logger.Debug("fixture built", "vertices", g.Order(), "edges", g.Size())

			rows := make([][]string, 0, len(config.Algorithms))
			for _, name := range config.Algorithms {
				sc := c.Config.Solver
				sc.Algorithm = name
				s, err := newSolver(name, g, c.solverOptions(ctx, sc)...)
				if err != nil {
					return err
				}

				prog := newProgress(logger)
				p, err := solver.ShortestPath(s, src, dst)
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name(), err)
				}
				prog.done("Solved with " + s.Name())

				route, dist := "no path", "unreachable"
				if p.Reachable {
					route, dist = p.String(), strconv.FormatInt(p.Weight(), 10)
					if len(p.Edges) == 0 {
						route = src.Name
					}
				}
				rows = append(rows, []string{s.Name(), route, dist})
			}

			_, err = fmt.Fprintln(c.out, renderTable([]string{"Algorithm", "Path " + src.Name + "→" + dst.Name, "Distance"}, rows))
			return err
		},
	}
	cmd.Flags().BoolVar(&small, "small", false, "use the 4-vertex graph with a duplicated edge")
	cmd.Flags().StringVar(&from, "from", "A", "source vertex")
	cmd.Flags().StringVar(&to, "to", "", "target vertex (default S, or D with --small)")

	return cmd
}
