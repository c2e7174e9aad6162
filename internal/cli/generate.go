// SPDX-License-Identifier: MIT
// Package: shortpath/internal/cli
//
// generate.go - the generate command: builder constructors to graph files.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/graphio"
)

// generators lists the kinds accepted by generate.
var generators = []string{"path", "cycle", "complete", "grid", "random-dag", "lecture", "lecture-small"}

type generateFlags struct {
	n, rows, cols int
	p             float64
	seed          int64
	weights       string
	weight        int64
	min, max      int64
	mean, stddev  float64
	name          string
	ids           string
	output        string
	format        string
}

// constructor maps kind to a builder constructor.
func (f *generateFlags) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random-dag":
		return builder.RandomDAG(f.n, f.p), nil
	case "lecture":
		return builder.Lecture(), nil
	case "lecture-small":
		return builder.LectureSmall(), nil
	}
	return nil, fmt.Errorf("unknown graph kind %q (want one of %s)", kind, strings.Join(generators, ", "))
}

// options resolves the seed, naming and weight distribution flags.
func (f *generateFlags) options() ([]builder.BuilderOption, error) {
	idFn, err := builder.ParseIDScheme(f.ids)
	if err != nil {
		return nil, err
	}
	opts := []builder.BuilderOption{builder.WithSeed(f.seed), builder.WithIDScheme(idFn)}
	switch f.weights {
	case "", "default":
	case "constant":
		opts = append(opts, builder.WithConstantWeight(f.weight))
	case "uniform":
		if f.max < f.min {
			return nil, fmt.Errorf("uniform weights: --max %d < --min %d", f.max, f.min)
		}
		opts = append(opts, builder.WithUniformWeight(f.min, f.max))
	case "normal":
		if f.stddev < 0 {
			return nil, fmt.Errorf("normal weights: --stddev %g < 0", f.stddev)
		}
		opts = append(opts, builder.WithNormalWeight(f.mean, f.stddev))
	default:
		return nil, fmt.Errorf("unknown weight distribution %q (want default, constant, uniform or normal)", f.weights)
	}
	return opts, nil
}

func (c *CLI) generateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:       "generate <kind>",
		Short:     "Write a generated graph to a JSON, YAML or TOML file",
		Long:      "Generate builds a graph of the given kind (" + strings.Join(generators, ", ") + ") and encodes it.",
		Example:   `  shortpath generate random-dag --n 50 --p 0.2 --weights uniform --min -10 --max 40 -o dag.yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: generators,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cons, err := f.constructor(args[0])
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(opts, cons)
			if err != nil {
				return err
			}
			name := f.name
			if name == "" {
				name = args[0]
			}

			if f.output == "" {
				format, err := graphio.ParseFormat(f.format)
				if err != nil {
					return err
				}
				return graphio.Write(c.out, name, g, format)
			}
			if err := graphio.WriteFile(f.output, name, g); err != nil {
				return err
			}
			logger.Infof("Wrote %s (%d vertices, %d edges)", f.output, g.Order(), g.Size())
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.n, "n", "n", 10, "vertex count for path, cycle, complete and random-dag")
	fl.IntVar(&f.rows, "rows", 4, "grid rows")
	fl.IntVar(&f.cols, "cols", 4, "grid columns")
	fl.Float64VarP(&f.p, "p", "p", 0.3, "edge probability for random-dag")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVarP(&f.weights, "weights", "w", "default", "weight distribution: default, constant, uniform or normal")
	fl.Int64Var(&f.weight, "weight", builder.DefaultEdgeWeight, "weight for --weights constant")
	fl.Int64Var(&f.min, "min", -10, "lower bound for --weights uniform")
	fl.Int64Var(&f.max, "max", 10, "upper bound for --weights uniform")
	fl.Float64Var(&f.mean, "mean", 0, "mean for --weights normal")
	fl.Float64Var(&f.stddev, "stddev", 5, "standard deviation for --weights normal")
	fl.StringVar(&f.name, "name", "", "graph name stored in the document (default: kind)")
	fl.StringVar(&f.ids, "ids", builder.SchemeNumeric, "vertex names for index-based kinds: numeric, letters or prefix:<p>")
	fl.StringVarP(&f.output, "output", "o", "", "output file; the extension selects the format (default stdout)")
	fl.StringVarP(&f.format, "format", "f", "yaml", "format when writing to stdout: json, yaml or toml")

	return cmd
}
