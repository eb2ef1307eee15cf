package export

import (
	"strings"
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/johnymontana/json-to-rdf/pkg/convert"
	"github.com/johnymontana/json-to-rdf/pkg/graph"
	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

func TestToDOTSingleStatement(t *testing.T) {
	vb := vocab.Default()
	stmts := []rdf.Statement{
		{
			S: rdf.BlankNode{ID: "b0"},
			P: vb.Property("title"),
			O: rdf.Literal{Lexical: "hello", Datatype: rdf.IRI{Value: vocab.XSDString}},
		},
	}

	dot := ToDOT(stmts, Options{})

	if !strings.HasPrefix(dot, "digraph ") {
		t.Errorf("output does not start with a digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimRight(dot, "\n"), "}") {
		t.Error("output is not closed with }")
	}

	// Exactly one edge per statement.
	if n := strings.Count(dot, "->"); n != 1 {
		t.Errorf("edge count = %d, want 1", n)
	}

	// The edge label is the compacted predicate, not the full IRI.
	if !strings.Contains(dot, `label="property/title"`) {
		t.Errorf("missing compacted predicate label:\n%s", dot)
	}
	if strings.Contains(dot, vocab.DefaultNamespace+"property") {
		t.Error("edge label carries the full predicate IRI")
	}
}

func TestToDOTNodeShapes(t *testing.T) {
	vb := vocab.Default()
	blank := rdf.BlankNode{ID: "b0"}
	stmts := []rdf.Statement{
		{S: vb.Document(), P: vb.HasRoot(), O: blank},
		{S: blank, P: vb.Property("n"),
			O: rdf.Literal{Lexical: "1", Datatype: rdf.IRI{Value: vocab.XSDInteger}}},
	}

	dot := ToDOT(stmts, Options{})

	tests := []struct {
		name  string
		want  string
		shape string
	}{
		{name: "BlankNode", want: "_:b0", shape: "shape=ellipse"},
		{name: "IRI", want: "document", shape: "shape=box"},
		{name: "Literal", want: `label="1"`, shape: "shape=note"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := ""
			for _, l := range strings.Split(dot, "\n") {
				if strings.Contains(l, tt.want) && strings.Contains(l, "shape=") {
					line = l
					break
				}
			}
			if line == "" {
				t.Fatalf("no node definition containing %q:\n%s", tt.want, dot)
			}
			if !strings.Contains(line, tt.shape) {
				t.Errorf("node line %q does not carry %s", line, tt.shape)
			}
		})
	}
}

func TestToDOTNodesEmittedOnce(t *testing.T) {
	// A node referenced by several statements is defined exactly once.
	vb := vocab.Default()
	blank := rdf.BlankNode{ID: "shared"}
	stmts := []rdf.Statement{
		{S: blank, P: vb.Property("a"), O: rdf.Literal{Lexical: "1", Datatype: rdf.IRI{Value: vocab.XSDInteger}}},
		{S: blank, P: vb.Property("b"), O: rdf.Literal{Lexical: "2", Datatype: rdf.IRI{Value: vocab.XSDInteger}}},
	}

	dot := ToDOT(stmts, Options{})

	defs := 0
	for _, l := range strings.Split(dot, "\n") {
		if strings.Contains(l, `"_:shared"`) && strings.Contains(l, "shape=") {
			defs++
		}
	}
	if defs != 1 {
		t.Errorf("shared node defined %d times, want 1", defs)
	}
}

func TestToDOTShowDatatypes(t *testing.T) {
	stmts := []rdf.Statement{
		{
			S: rdf.BlankNode{ID: "b0"},
			P: vocab.Default().Property("n"),
			O: rdf.Literal{Lexical: "7", Datatype: rdf.IRI{Value: vocab.XSDInteger}},
		},
	}

	plain := ToDOT(stmts, Options{})
	if strings.Contains(plain, "7 : integer") {
		t.Error("datatype shown without ShowDatatypes")
	}

	typed := ToDOT(stmts, Options{ShowDatatypes: true})
	if !strings.Contains(typed, "7 : integer") {
		t.Errorf("ShowDatatypes output missing datatype suffix:\n%s", typed)
	}
}

func TestToDOTConvertedDocument(t *testing.T) {
	g := graph.New()
	if _, err := convert.Convert([]byte(`{"a": 1, "b": [true, "x"]}`), g, convert.Options{}); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	dot := ToDOT(g.Statements(), Options{})
	if n := strings.Count(dot, "->"); n != g.Len() {
		t.Errorf("edge count = %d, want %d (one per statement)", n, g.Len())
	}
}
