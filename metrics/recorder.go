// SPDX-License-Identifier: MIT
// Package: shortpath/metrics
//
// recorder.go - Prometheus-backed solver.Hooks.

package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/shortpath/solver"
)

// DefaultNamespace prefixes every metric name unless NewRecorder gets another.
const DefaultNamespace = "shortpath"

// Outcome label values.
const (
	OutcomeOK             = "ok"
	OutcomeNegativeCycle  = "negative_cycle"
	OutcomeIterationLimit = "iteration_limit"
	OutcomeCanceled       = "canceled"
	OutcomeError          = "error"
)

// Recorder collects solver statistics. It is safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	SolvesTotal      *prometheus.CounterVec
	SolveDuration    *prometheus.HistogramVec
	RelaxationsTotal *prometheus.CounterVec
	GraphVertices    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a private registry. An empty namespace
// means DefaultNamespace.
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,

		SolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of Solve calls",
			},
			[]string{"algorithm", "outcome"},
		),

		SolveDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall time of Solve calls",
				Buckets:   []float64{.00001, .0001, .001, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"algorithm"},
		),

		RelaxationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relaxations_total",
				Help:      "Successful distance improvements across all solves",
			},
			[]string{"algorithm"},
		),

		GraphVertices: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_vertices",
				Help:      "Number of vertices in solved graphs",
				Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"algorithm"},
		),
	}
}

// OnSolve implements solver.Hooks.
func (r *Recorder) OnSolve(st solver.Stats, err error) {
	r.SolvesTotal.WithLabelValues(st.Algorithm, Outcome(err)).Inc()
	r.SolveDuration.WithLabelValues(st.Algorithm).Observe(st.Duration.Seconds())
	r.RelaxationsTotal.WithLabelValues(st.Algorithm).Add(float64(st.Relaxations))
	r.GraphVertices.WithLabelValues(st.Algorithm).Observe(float64(st.Vertices))
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format,
// atomically, as the node exporter textfile collector expects.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

// Outcome classifies a Solve error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, solver.ErrNegativeCycle):
		return OutcomeNegativeCycle
	case errors.Is(err, solver.ErrIterationLimit):
		return OutcomeIterationLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

var _ solver.Hooks = (*Recorder)(nil)
