// SPDX-License-Identifier: MIT
// Package: shortpath/internal/cli
//
// root.go - CLI state, the root command and per-run setup/teardown.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/metrics"
)

const appName = "shortpath"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values shown by --version, usually from ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands of one invocation.
type CLI struct {
	Logger   *log.Logger
	Config   *config.Config
	Recorder *metrics.Recorder

	out, errw  io.Writer
	configPath string
	verbose    bool
	logFile    io.Closer
}

// New returns a CLI writing results to out and logs to errw.
func New(out, errw io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(errw, log.InfoLevel),
		out:    out,
		errw:   errw,
	}
}

// RootCommand creates the root cobra command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Shortest paths on graphs with negative edge weights",
		Long: `shortpath computes shortest paths on weighted directed graphs whose edges may
be negative, with Bellman-Ford (regular or work-list) or Floyd-Warshall.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)
	root.SetErr(c.errw)
	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\ncommit: %s\nbuilt: %s\n", appName, commit, date))

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML config file (default $"+config.ConfigEnvVar+")")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// Execute runs the command tree with args and flushes metrics and the log
// file afterwards, whether or not the command failed.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if ferr := c.finish(); ferr != nil {
		err = errors.Join(err, ferr)
	}
	return err
}

// setup loads configuration and builds the logger and the metrics recorder.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.WithFile(c.configPath))
	if err != nil {
		return err
	}
	c.Config = cfg

	sink, closer := logSink(c.errw, cfg.Log)
	c.logFile = closer
	c.Logger = newLogger(sink, logLevel(cfg.Log, c.verbose))
	c.Recorder = metrics.NewRecorder(cfg.Metrics.Namespace)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "file", c.configPath, "algorithm", cfg.Solver.Algorithm)

	return nil
}

// finish writes the metrics textfile and closes the log file.
func (c *CLI) finish() error {
	var errs []error
	if c.Config != nil && c.Config.Metrics.File != "" && c.Recorder != nil {
		if err := c.Recorder.WriteTextfile(c.Config.Metrics.File); err != nil {
			errs = append(errs, err)
		} else {
			c.Logger.Debug("metrics written", "file", c.Config.Metrics.File)
		}
	}
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
		c.logFile = nil
	}
	return errors.Join(errs...)
}
