package export

import (
	"bytes"
	"fmt"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

// Options configures DOT generation.
type Options struct {
	// Vocab compacts predicate IRIs into short edge labels
	// ("property/title" instead of the full IRI). The zero value selects
	// the default namespace.
	Vocab vocab.Vocabulary

	// ShowDatatypes appends the datatype's local name to literal labels.
	ShowDatatypes bool
}

// ToDOT converts a statement set to GraphViz DOT format. Nodes are
// emitted on first encounter, so output order follows statement order;
// the result is valid DOT regardless of how the statements were sorted.
func ToDOT(stmts []rdf.Statement, opts Options) string {
	vb := opts.Vocab
	if vb == (vocab.Vocabulary{}) {
		vb = vocab.Default()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph rdf {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [fontsize=11];\n")
	buf.WriteString("  edge [color=darkblue, fontcolor=darkblue, fontsize=10];\n")
	buf.WriteString("\n")

	seen := make(map[string]bool)
	for _, st := range stmts {
		writeNode(&buf, st.S, vb, opts, seen)
		writeNode(&buf, st.O, vb, opts, seen)
	}

	buf.WriteString("\n")
	for _, st := range stmts {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
			st.S.String(), st.O.String(), vb.Compact(st.P))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeNode emits a DOT node definition for t the first time it appears.
// The term's string form is the DOT node ID; labels and shapes depend on
// the term kind.
func writeNode(buf *bytes.Buffer, t rdf.Term, vb vocab.Vocabulary, opts Options, seen map[string]bool) {
	id := t.String()
	if seen[id] {
		return
	}
	seen[id] = true

	var label, attrs string
	switch term := t.(type) {
	case rdf.BlankNode:
		label = term.String()
		attrs = "shape=ellipse, style=filled, fillcolor=lightblue"
	case rdf.IRI:
		label = vb.Compact(term)
		attrs = "shape=box, style=filled, fillcolor=lightyellow"
	case rdf.Literal:
		label = term.Lexical
		if opts.ShowDatatypes && term.Datatype.Value != "" {
			label += " : " + vocab.Local(term.Datatype)
		}
		attrs = "shape=note, style=filled, fillcolor=white"
	default:
		label = id
		attrs = "shape=plaintext"
	}

	fmt.Fprintf(buf, "  %q [label=%q, %s];\n", id, label, attrs)
}
