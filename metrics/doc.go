// Package metrics records solver runs as Prometheus metrics.
//
// Recorder implements solver.Hooks; pass it with solver.WithHooks and every
// Solve is counted by algorithm and outcome, timed, and its relaxations are
// added up. Each Recorder owns its registry, so several can coexist in one
// process (tests, parallel CLI invocations). The `shortpath` command dumps
// the registry to a node-exporter textfile when metrics.file is configured.
package metrics
