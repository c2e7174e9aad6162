// Package cli implements the shortpath command-line interface.
//
// # Commands
//
//   - solve: shortest paths from one vertex of a graph file
//   - export: Graphviz DOT or SVG of a graph with its shortest path highlighted
//   - generate: write a builder graph (path, grid, random DAG, ...) to a file
//   - demo: the built-in lecture graph through every algorithm
//
// # Configuration and logging
//
// Settings come from internal/config (defaults, --config YAML file,
// SHORTPATH_* variables); explicit flags win. Logs go to stderr through
// charmbracelet/log and, when log.file is set, to a rotating file. --verbose
// switches to debug level, which includes per-solve statistics. When
// metrics.file is set every solve is recorded and dumped there on exit.
package cli
