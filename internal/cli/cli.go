// Package cli implements the syclop command-line interface.
//
// This package provides commands for solving kinodynamic motion planning
// problems with SYCLOP-guided sampling, visualizing the resulting
// decomposition graph, and managing the Redis-backed estimate cache. The
// CLI is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: run a planner against a named demo scenario or a TOML config
//   - visualize: render a decomposition graph (and its last lead) to DOT/SVG
//   - cache: invalidate cached region/edge estimates
//   - serve: run the HTTP API for on-demand solves and run lookups
//   - completion: generate shell completion scripts
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/latticeplan/syclop/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "syclop"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "syclop plans kinodynamic motions with decomposition-guided sampling",
		Long:         `syclop is a CLI around a SYCLOP-style meta-planner: it layers high-level lead guidance over a low-level sampling-based tree extender to solve kinodynamic motion planning problems.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
