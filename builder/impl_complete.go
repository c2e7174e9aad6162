// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair (i,j), i≠j, lexicographically: n·(n-1) arcs.
//   - One weight draw per arc, so u→v and v→u may differ.
//
// Complete graphs are the worst case for the dense all-pairs solver and for
// Bellman-Ford passes; with negative weights they almost always contain a
// negative cycle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := declareN(b, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				b.Edge(ids[i], ids[j], cfg.weight())
			}
		}
		return finish(methodComplete, b)
	}
}
