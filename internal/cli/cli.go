// Package cli implements the geodesic command-line interface.
//
// The CLI wraps the library pipeline for file-based inputs: it loads vertex
// positions and connectivity from Wavefront OBJ or CSV tables, computes a
// distance table with the dist command, and reconstructs start→target paths
// with the path command. Defaults may come from a TOML config file; flags
// override file values.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = ""    // git commit SHA
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the geodesic CLI and returns an error if any command fails.
//
// The root command wires the dist and path subcommands and attaches a
// leveled logger to the command context (info by default, debug with
// --verbose).
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "geodesic",
		Short:        "geodesic computes shortest-path distances over graphs and surface meshes",
		Long:         `geodesic loads vertex positions and connectivity (graph edges or mesh triangles) from OBJ or CSV input, runs a shortest-path search from one or more start vertices, and reconstructs minimal-cost paths to arbitrary targets.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("geodesic %s commit=%s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDistCmd())
	root.AddCommand(newPathCmd())

	return root.ExecuteContext(ctx)
}
