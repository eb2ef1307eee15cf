package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnymontana/json-to-rdf/pkg/export"
	"github.com/johnymontana/json-to-rdf/pkg/graph"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format    string // output format: dot, svg, png
	datatypes bool   // annotate literal nodes with their datatype
}

// newExportCmd creates the export command, the N-Quads → DOT pipeline.
// SVG and PNG output run the DOT text through the embedded Graphviz
// layout engine.
func newExportCmd() *cobra.Command {
	opts := exportOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "export <input.nq> <output.dot>",
		Short: "Export an RDF N-Quads file as a GraphViz graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateExportFormat(opts.format); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.datatypes, "datatypes", false, "show literal datatypes in node labels")

	return cmd
}

// validateExportFormat checks that the requested format is supported.
func validateExportFormat(f string) error {
	switch f {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
}

// runExport parses the N-Quads input, lists its edges as DOT, and writes
// the result in the requested format.
func runExport(ctx context.Context, input, output string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := graph.Import(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Debugf("Loaded %d statements from %s", g.Len(), input)

	dot := export.ToDOT(g.Statements(), export.Options{ShowDatatypes: opts.datatypes})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = export.RenderSVG(ctx, dot)
	case formatPNG:
		data, err = export.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Exported %s to %s (%d statements)", input, output, g.Len()))
	return nil
}
