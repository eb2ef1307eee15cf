package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/geoknoesis/rdf-go/rdf"
)

// WriteNQuads serializes the graph to w in N-Quads format, one statement
// per line. Escaping and term formatting follow the N-Quads grammar via
// the rdf-go encoder.
func (g *Graph) WriteNQuads(w io.Writer) error {
	enc, err := rdf.NewWriter(w, rdf.FormatNQuads)
	if err != nil {
		return fmt.Errorf("nquads encoder: %w", err)
	}
	for _, st := range g.stmts {
		if err := enc.Write(st); err != nil {
			return fmt.Errorf("encode statement: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return enc.Close()
}

// MarshalNQuads serializes the graph to an in-memory N-Quads document.
func (g *Graph) MarshalNQuads() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.WriteNQuads(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export writes the graph to an N-Quads file at path. The document is
// serialized in memory first and written in one step, so a failed
// conversion never leaves a partial output file behind.
func (g *Graph) Export(path string) error {
	data, err := g.MarshalNQuads()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadNQuads decodes an N-Quads stream from r into a Graph.
//
// Malformed input surfaces the rdf-go parse error, which carries line and
// column context for locating the problem. ReadNQuads does not close r.
func ReadNQuads(r io.Reader) (*Graph, error) {
	dec, err := rdf.NewReader(r, rdf.FormatNQuads)
	if err != nil {
		return nil, fmt.Errorf("nquads decoder: %w", err)
	}
	defer dec.Close()

	g := New()
	for {
		st, err := dec.Next()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse nquads: %w", err)
		}
		g.AddStatement(st)
	}
}

// Import reads an N-Quads file at path and returns the decoded Graph.
// The error wraps the underlying cause with the file path for context.
func Import(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadNQuads(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
