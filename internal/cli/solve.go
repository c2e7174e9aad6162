// SPDX-License-Identifier: MIT
// Package: shortpath/internal/cli
//
// solve.go - the solve command and the solver plumbing shared with export.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/floydwarshall"
	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/solver"
)

// ErrUnknownVertex indicates a --from/--to name missing from the graph.
var ErrUnknownVertex = errors.New("unknown vertex")

// solveFlags are the flags shared by solve and export.
type solveFlags struct {
	from, to      string
	algorithm     string
	maxIterations int
	cycleCheck    bool
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "source vertex name (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "target vertex name")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "regular, worklist or floyd-warshall (default from config)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "bound on work-list pops, 0 = unbounded")
	cmd.Flags().BoolVar(&f.cycleCheck, "cycle-check", false, "detect negative cycles in worklist and floyd-warshall")
	_ = cmd.MarkFlagRequired("from")
}

// resolve lays explicitly set flags over the configured solver defaults.
func (f *solveFlags) resolve(cmd *cobra.Command, cfg *config.Config) (config.SolverConfig, error) {
	sc := cfg.Solver
	if cmd.Flags().Changed("algorithm") {
		sc.Algorithm = f.algorithm
	}
	if cmd.Flags().Changed("max-iterations") {
		sc.MaxIterations = f.maxIterations
	}
	if cmd.Flags().Changed("cycle-check") {
		sc.CycleCheck = f.cycleCheck
	}
	if !config.IsAlgorithm(sc.Algorithm) {
		return sc, fmt.Errorf("%w: algorithm %q", config.ErrInvalid, sc.Algorithm)
	}
	if sc.MaxIterations < 0 {
		return sc, fmt.Errorf("%w: max-iterations %d", config.ErrInvalid, sc.MaxIterations)
	}
	return sc, nil
}

// solverOptions turns sc into solver options wired to the CLI logger,
// the metrics recorder and ctx.
func (c *CLI) solverOptions(ctx context.Context, sc config.SolverConfig) []solver.Option {
	opts := []solver.Option{
		solver.WithLogger(loggerFromContext(ctx)),
		solver.WithContext(ctx),
		solver.WithMaxIterations(sc.MaxIterations),
	}
	if c.Recorder != nil {
		opts = append(opts, solver.WithHooks(c.Recorder))
	}
	if sc.CycleCheck {
		opts = append(opts, solver.WithCycleCheck())
	}
	return opts
}

// newSolver builds the solver called algorithm over g.
func newSolver(algorithm string, g *core.Graph, opts ...solver.Option) (solver.Solver, error) {
	switch algorithm {
	case config.AlgorithmRegular:
		s, err := bellmanford.NewRegular(g, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.AlgorithmWorklist:
		s, err := bellmanford.NewWorklist(g, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.AlgorithmFloyd:
		s, err := floydwarshall.NewSolver(g, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: algorithm %q", config.ErrInvalid, algorithm)
	}
}

// lookup resolves a vertex name in g.
func lookup(g *core.Graph, name string) (core.Vertex, error) {
	v, ok := g.VertexByName(name)
	if !ok {
		return core.Vertex{}, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	return v, nil
}

// query loads the graph at path and runs one solve from f.from. When f.to
// is set the solver's target is set too.
func (c *CLI) query(cmd *cobra.Command, path string, f *solveFlags) (solver.Solver, *core.Graph, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := f.resolve(cmd, c.Config)
	if err != nil {
		return nil, nil, err
	}

	g, err := graphio.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("graph loaded", "file", path, "vertices", g.Order(), "edges", g.Size())

	src, err := lookup(g, f.from)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSolver(sc.Algorithm, g, c.solverOptions(ctx, sc)...)
	if err != nil {
		return nil, nil, err
	}
	s.From(src)
	if f.to != "" {
		dst, err := lookup(g, f.to)
		if err != nil {
			return nil, nil, err
		}
		s.To(dst)
	}

	prog := newProgress(logger)
	if err := s.Solve(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	prog.done(fmt.Sprintf("Solved %d vertices with %s", g.Order(), s.Name()))

	return s, g, nil
}

func (c *CLI) solveCommand() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Compute shortest paths from one vertex",
		Long: `Solve reads a graph (.json, .yaml or .toml) and computes shortest paths from
--from. With --to it prints the path and its weight, otherwise the distance
to every vertex.`,
		Example: `  shortpath solve graph.yaml --from A --to S
  shortpath solve graph.json --from A -a worklist --cycle-check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, g, err := c.query(cmd, args[0], &f)
			if err != nil {
				return err
			}
			if f.to == "" {
				return c.printDistances(s, g)
			}
			src, _ := g.VertexByName(f.from)
			dst, _ := g.VertexByName(f.to)
			return c.printPath(s, src, dst)
		},
	}
	f.register(cmd)

	return cmd
}

// printPath writes "A -(2)> B" and the weight, or a no-path notice.
func (c *CLI) printPath(s solver.Solver, src, dst core.Vertex) error {
	edges, err := s.EdgesOnPath()
	if err != nil {
		return err
	}
	d, ok := s.Distance(dst)
	if !ok {
		_, err = fmt.Fprintf(c.out, "no path from %s to %s\n", src.Name, dst.Name)
		return err
	}
	if len(edges) == 0 {
		_, err = fmt.Fprintf(c.out, "%s\ndistance: 0\n", src.Name)
		return err
	}
	_, err = fmt.Fprintf(c.out, "%s\ndistance: %d\n", solver.FormatPath(edges), d)
	return err
}

// printDistances renders one row per vertex in graph order.
func (c *CLI) printDistances(s solver.Solver, g *core.Graph) error {
	rows := make([][]string, 0, g.Order())
	for _, v := range g.Vertices() {
		d := "unreachable"
		if dist, ok := s.Distance(v); ok {
			d = strconv.FormatInt(dist, 10)
		}
		rows = append(rows, []string{v.Name, d})
	}
	_, err := fmt.Fprintln(c.out, renderTable([]string{"Vertex", "Distance"}, rows))
	return err
}

// renderTable draws a plain rounded-border table.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}
