// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_dag.go - implementation of RandomDAG(n, p).
//
// Model: Erdős–Rényi restricted to forward pairs. Each ordered pair (i,j)
// with i<j becomes the arc i→j with probability p. Every arc points to a
// higher index, so the result is acyclic and negative weights can never form
// a negative cycle. Cross-solver agreement tests rely on this.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is i asc, then j asc; for a fixed seed the graph is fixed.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomDAG      = "RandomDAG"
	minRandomDAGVertices = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomDAG returns a Constructor that samples a random acyclic digraph over
// n vertices with forward-arc probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomDAGVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDAG, n, minRandomDAGVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		ids := declareN(b, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || (rng != nil && rng.Float64() < p) {
					b.Edge(ids[i], ids[j], cfg.weight())
				}
			}
		}
		return finish(methodRandomDAG, b)
	}
}
