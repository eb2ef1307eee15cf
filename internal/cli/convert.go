package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnymontana/json-to-rdf/pkg/config"
	"github.com/johnymontana/json-to-rdf/pkg/convert"
	"github.com/johnymontana/json-to-rdf/pkg/graph"
	"github.com/johnymontana/json-to-rdf/pkg/schema"
	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	namespace  string // vocabulary namespace override
	maxDepth   int    // nesting depth limit override
	schemaPath string // optional predicate schema output path
	configPath string // optional TOML config file
}

// newConvertCmd creates the convert command, the JSON → N-Quads pipeline.
//
// Settings resolve in three layers: built-in defaults, then the TOML
// config file (--config), then explicit flags. The output file is only
// written after the full graph has been serialized in memory, so a
// failing conversion never leaves a partial .nq file behind.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <input.json> <output.nq>",
		Short: "Convert a JSON document to an RDF N-Quads file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "base IRI namespace for vocabulary terms")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum JSON nesting depth")
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "also write a predicate schema summary to this path")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")

	return cmd
}

// resolveConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func resolveConfig(opts *convertOpts) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.namespace != "" {
		cfg.Namespace = opts.namespace
	}
	if opts.maxDepth > 0 {
		cfg.MaxDepth = opts.maxDepth
	}
	return cfg, nil
}

// runConvert reads the input document, walks it into an RDF graph, and
// writes the graph as N-Quads. Each failure names its stage so the user
// can tell a parse problem from a write problem.
func runConvert(ctx context.Context, input, output string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Debugf("Read %s: %d bytes", input, len(data))

	vb := vocab.New(cfg.Namespace)
	g := graph.New()
	root, err := convert.Convert(data, g, convert.Options{Vocab: vb, MaxDepth: cfg.MaxDepth})
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}
	logger.Debugf("Converted to %d statements, root %s", g.Len(), root.String())

	if err := g.Export(output); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	if opts.schemaPath != "" {
		summary := schema.Generate(g.Statements(), vb)
		if err := os.WriteFile(opts.schemaPath, []byte(summary), 0o644); err != nil {
			return fmt.Errorf("write schema %s: %w", opts.schemaPath, err)
		}
		logger.Infof("Wrote predicate schema to %s", opts.schemaPath)
	}

	prog.done(fmt.Sprintf("Converted %s to %s (%d statements)", input, output, g.Len()))
	return nil
}
