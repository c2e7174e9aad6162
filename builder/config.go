// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go - resolved builder configuration and the declaration helpers
// every constructor shares.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (no randomness unless seeded)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/shortpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// declare returns the vertex named name, declaring it on first use.
func declare(b *core.Builder, name string) core.Vertex {
	if v, ok := b.Lookup(name); ok {
		return v
	}
	return b.Vertex(name)
}

// declareN declares n vertices named by cfg.idFn and returns their names.
func declareN(b *core.Builder, cfg builderConfig, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = cfg.idFn(i)
		declare(b, names[i])
	}
	return names
}

// finish surfaces the first error recorded on b with the method context.
func finish(method string, b *core.Builder) error {
	if err := b.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	return nil
}
