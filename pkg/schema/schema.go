// Package schema summarizes the predicates of a converted graph.
//
// The summary lists every predicate with the value kinds observed for it:
// "uid" for statements pointing at another node, or a scalar kind derived
// from the literal datatype. It gives a quick shape overview of a
// converted document and matches the predicate declaration format used by
// graph stores that import N-Quads.
package schema

import (
	"sort"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

// kindOf maps a statement object to a schema value kind.
func kindOf(o rdf.Term, vb vocab.Vocabulary) string {
	lit, ok := o.(rdf.Literal)
	if !ok {
		return "uid"
	}
	if vb.IsNull(lit) {
		return "null"
	}
	switch lit.Datatype.Value {
	case vocab.XSDInteger:
		return "int"
	case vocab.XSDDouble:
		return "float"
	case vocab.XSDBoolean:
		return "bool"
	default:
		return "string"
	}
}

// Generate produces the predicate schema for a statement set. Type-marker
// statements are omitted (they carry no document data); remaining
// predicates are listed in sorted order, one line each:
//
//	property/title: string .
//	property/tags: uid .
//
// Predicates observed with several value kinds list all of them joined
// with " | ".
func Generate(stmts []rdf.Statement, vb vocab.Vocabulary) string {
	if vb == (vocab.Vocabulary{}) {
		vb = vocab.Default()
	}

	kinds := make(map[string]map[string]bool)
	for _, st := range stmts {
		if st.P.Value == vocab.RDFType {
			continue
		}
		name := vb.Compact(st.P)
		if kinds[name] == nil {
			kinds[name] = make(map[string]bool)
		}
		kinds[name][kindOf(st.O, vb)] = true
	}

	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("# Predicate schema generated from RDF data\n")
	for _, name := range names {
		ks := make([]string, 0, len(kinds[name]))
		for k := range kinds[name] {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.Join(ks, " | "))
		b.WriteString(" .\n")
	}
	return b.String()
}
