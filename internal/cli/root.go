// Package cli implements the jsonrdf command-line interface.
//
// The tool has two independent pipelines: convert (JSON → RDF N-Quads)
// and export (N-Quads → GraphViz DOT, optionally rasterized). Commands
// are built with cobra; all of them support --verbose for debug-level
// logging, with the logger carried through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the jsonrdf CLI and returns an error if any command fails.
//
// The function sets up the root command with the convert, export, and
// completion subcommands, configures logging based on the --verbose flag,
// and executes the command tree.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "jsonrdf",
		Short:        "jsonrdf converts JSON documents to RDF graphs",
		Long:         `jsonrdf maps the tree structure of a JSON document onto an RDF graph serialized as N-Quads, and turns N-Quads files into GraphViz DOT descriptions for visualization.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("jsonrdf %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
