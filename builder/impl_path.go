// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - implementation of Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, arcs (i-1)→i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the Path arcs followed by the closing arc (n-1)→0.
//   - Vertices are named by cfg.idFn in ascending index order.
//   - Weights come from cfg.weightFn, one draw per arc in emission order.
//
// Complexity: O(n) time, O(n) space for the name slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath    = "Path"
	minPathNodes  = 2
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		chain(b, cfg, declareN(b, cfg, n))
		return finish(methodPath, b)
	}
}

// Cycle returns a Constructor that builds the directed cycle C_n. With a
// negative total weight the cycle is a negative-weight cycle.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		names := declareN(b, cfg, n)
		chain(b, cfg, names)
		b.Edge(names[n-1], names[0], cfg.weight())
		return finish(methodCycle, b)
	}
}

// chain emits names[i-1]→names[i] for every i.
func chain(b *core.Builder, cfg builderConfig, names []string) {
	for i := 1; i < len(names); i++ {
		b.Edge(names[i-1], names[i], cfg.weight())
	}
}
