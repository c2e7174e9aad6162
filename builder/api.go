// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg once, runs
//     cons in order on one core.Builder, then freezes the Graph.
//   - Determinism: same options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor declares vertices and edges on b using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and builds
// the resulting graph. A constructor error is wrapped as "BuildGraph: %w"
// and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := core.NewBuilder()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, nil
}

// MustBuildGraph is like BuildGraph but panics on error. Intended for
// fixtures in tests, examples and benchmarks.
func MustBuildGraph(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}
