// SPDX-License-Identifier: MIT
// Package: shortpath/internal/config
//
// config.go - typed configuration of the shortpath command.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Algorithm names accepted by solver.algorithm and --algorithm.
const (
	AlgorithmRegular  = "regular"
	AlgorithmWorklist = "worklist"
	AlgorithmFloyd    = "floyd-warshall"
)

// Algorithms lists every accepted algorithm name in display order.
var Algorithms = []string{AlgorithmRegular, AlgorithmWorklist, AlgorithmFloyd}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Solver  SolverConfig  `koanf:"solver"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// LogConfig controls the CLI logger. An empty File logs to stderr only.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"` // megabytes
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// SolverConfig holds the defaults of the solve command.
type SolverConfig struct {
	Algorithm     string `koanf:"algorithm"`
	MaxIterations int    `koanf:"max_iterations"`
	CycleCheck    bool   `koanf:"cycle_check"`
}

// MetricsConfig enables the Prometheus textfile dump when File is set.
type MetricsConfig struct {
	File      string `koanf:"file"`
	Namespace string `koanf:"namespace"`
}

// Validate rejects unknown names and negative bounds.
func (c *Config) Validate() error {
	var errs []error

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("%w: log rotation bounds must be non-negative", ErrInvalid))
	}
	if !IsAlgorithm(c.Solver.Algorithm) {
		errs = append(errs, fmt.Errorf("%w: solver.algorithm %q (want one of %s)",
			ErrInvalid, c.Solver.Algorithm, strings.Join(Algorithms, ", ")))
	}
	if c.Solver.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("%w: solver.max_iterations %d", ErrInvalid, c.Solver.MaxIterations))
	}

	return errors.Join(errs...)
}

// IsAlgorithm reports whether name is one of Algorithms.
func IsAlgorithm(name string) bool {
	for _, a := range Algorithms {
		if a == name {
			return true
		}
	}
	return false
}
