// SPDX-License-Identifier: MIT
// Package: shortpath/solver
//
// types.go - sentinel errors, functional options and observation hooks shared
// by every solver implementation.

package solver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by solvers and by path reconstruction.
var (
	// ErrNoSource indicates Solve was called before From.
	ErrNoSource = errors.New("solver: source vertex not set")

	// ErrNoTarget indicates a path was requested before To.
	ErrNoTarget = errors.New("solver: target vertex not set")

	// ErrNotSolved indicates a query was made before a successful Solve.
	ErrNotSolved = errors.New("solver: Solve has not completed")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source. Distances computed by the aborted solve are discarded.
	ErrNegativeCycle = errors.New("solver: negative-weight cycle detected")

	// ErrIterationLimit indicates the configured iteration bound was exceeded.
	ErrIterationLimit = errors.New("solver: iteration limit exceeded")

	// ErrMissingEdge indicates two consecutive path vertices with no backing
	// edge. It means the predecessor or next-hop bookkeeping is corrupted.
	ErrMissingEdge = errors.New("solver: no edge between consecutive path vertices")

	// ErrCorruptPath indicates a predecessor or next-hop walk that does not
	// terminate within |V| steps.
	ErrCorruptPath = errors.New("solver: path reconstruction does not terminate")

	// ErrBadMaxIterations indicates a negative iteration bound.
	ErrBadMaxIterations = errors.New("solver: MaxIterations must be non-negative")
)

// Options configures a solver. The zero value is not usable; start from
// DefaultOptions or pass Option values to a solver constructor.
//
// Logger        – debug-level progress and timing; defaults to a discarding logger.
// Hooks         – observation callback invoked once per Solve; defaults to NopHooks.
// MaxIterations – upper bound on work-list pops (0 = unbounded).
// CycleCheck    – opt-in negative-cycle detection where it is off by default.
// Ctx           – cancellation for long-running solves; defaults to context.Background().
type Options struct {
	Logger        *log.Logger
	Hooks         Hooks
	MaxIterations int
	CycleCheck    bool
	Ctx           context.Context
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// DefaultOptions returns the behaviour every solver has when no option is given:
// silent logging, no hooks, no iteration bound, no extra cycle check.
func DefaultOptions() Options {
	return Options{
		Logger:        log.New(io.Discard),
		Hooks:         NopHooks{},
		MaxIterations: 0,
		CycleCheck:    false,
		Ctx:           context.Background(),
	}
}

// Apply resolves opts on top of DefaultOptions.
func Apply(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes debug output to l. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks registers h to observe every Solve. A nil value keeps NopHooks.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		if h != nil {
			o.Hooks = h
		}
	}
}

// WithMaxIterations bounds the number of work-list pops. Zero means unbounded.
// Negative values panic with ErrBadMaxIterations, like other option
// constructors that reject invalid configuration early.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithCycleCheck enables negative-cycle detection in solvers that skip it by
// default (Bellman-Ford work-list, Floyd-Warshall). Regular Bellman-Ford always checks.
func WithCycleCheck() Option {
	return func(o *Options) { o.CycleCheck = true }
}

// WithContext lets a caller cancel a running solve. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Stats describes one completed (or failed) Solve.
type Stats struct {
	Algorithm   string        // solver Name()
	Vertices    int           // |V|
	Edges       int           // |E|
	Relaxations int           // successful distance improvements
	Iterations  int           // passes (Regular), pops (Worklist) or k-rounds (Floyd-Warshall)
	Duration    time.Duration // wall time of the solve
}

// Hooks observes solver runs. Implementations must not retain Stats beyond the call.
type Hooks interface {
	OnSolve(st Stats, err error)
}

// NopHooks ignores every event.
type NopHooks struct{}

// OnSolve implements Hooks.
func (NopHooks) OnSolve(Stats, error) {}

// Observe logs st at debug level and forwards it to the configured hooks.
// Solvers call it exactly once at the end of Solve; it never alters results.
func (o Options) Observe(st Stats, err error) {
	kv := []interface{}{
		"algorithm", st.Algorithm,
		"vertices", st.Vertices,
		"edges", st.Edges,
		"relaxations", st.Relaxations,
		"iterations", st.Iterations,
		"elapsed", st.Duration,
	}
	if err != nil {
		o.Logger.Debug("solve failed", append(kv, "err", err)...)
	} else {
		o.Logger.Debug("solve complete", kv...)
	}
	o.Hooks.OnSolve(st, err)
}
