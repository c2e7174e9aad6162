// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Constructors attach context with %w ("Path: n=1 < min=2: ...").
//   - Option constructors panic instead of returning errors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the underlying core.Builder rejected a
// declaration, or a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownIDScheme indicates a name passed to ParseIDScheme that matches no
// naming scheme.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
