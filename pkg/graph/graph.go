package graph

import (
	"github.com/geoknoesis/rdf-go/rdf"
)

// Graph is a mutable set of RDF statements in the default graph.
// Statements are kept in insertion order, which makes emission
// deterministic for a given walk. Consumers must only rely on set
// equality: the serialized form guarantees the quad set, not line order.
//
// The zero value is usable and empty; New is provided for symmetry with
// the rest of the codebase. Graph is not safe for concurrent use.
type Graph struct {
	stmts []rdf.Statement
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{}
}

// Add appends one default-graph statement built from subject, predicate,
// and object.
func (g *Graph) Add(s rdf.Term, p rdf.IRI, o rdf.Term) {
	g.stmts = append(g.stmts, rdf.Statement{S: s, P: p, O: o})
}

// AddStatement appends a complete statement, preserving its graph term.
// Used when loading quads back from disk.
func (g *Graph) AddStatement(st rdf.Statement) {
	g.stmts = append(g.stmts, st)
}

// Statements returns the accumulated statements in insertion order.
// The returned slice is the graph's backing store; callers must not
// modify it.
func (g *Graph) Statements() []rdf.Statement { return g.stmts }

// Len returns the number of accumulated statements.
func (g *Graph) Len() int { return len(g.stmts) }
