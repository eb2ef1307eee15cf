package convert

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

var (
	// ErrNoRoot is returned by [Rebuild] when the statement set carries
	// no hasRoot marker, leaving no place to start traversal.
	ErrNoRoot = errors.New("graph has no root marker")

	// ErrAmbiguousKey is returned by [Rebuild] when an object node has
	// multiple statements for the same key. The converter's keep-all
	// policy preserves duplicates in the graph, but a rebuilt Go map
	// cannot hold both values.
	ErrAmbiguousKey = errors.New("duplicate object key cannot be rebuilt")

	// ErrBadStructure is returned by [Rebuild] for statement sets that do
	// not describe a JSON tree: missing type markers, gapped array
	// indexes, or cyclic blank node references.
	ErrBadStructure = errors.New("statements do not describe a JSON tree")
)

// Rebuild reconstructs a JSON value from a statement set produced by
// [Convert], starting at the hasRoot marker. Objects become
// map[string]any, arrays []any (ordered by their index statements),
// and literals become string, float64, bool, or nil.
//
// Rebuild exists to make round-trip structure preservation checkable:
// for inputs without duplicate keys, converting and rebuilding yields a
// value structurally equal to the encoding/json parse of the input.
func Rebuild(stmts []rdf.Statement, vb vocab.Vocabulary) (any, error) {
	if vb == (vocab.Vocabulary{}) {
		vb = vocab.Default()
	}

	bySubject := make(map[string][]rdf.Statement)
	var root rdf.Term
	for _, st := range stmts {
		if st.P == vb.HasRoot() {
			root = st.O
			continue
		}
		key := st.S.String()
		bySubject[key] = append(bySubject[key], st)
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return rebuildNode(root, bySubject, vb, make(map[string]bool))
}

func rebuildNode(t rdf.Term, idx map[string][]rdf.Statement, vb vocab.Vocabulary, visiting map[string]bool) (any, error) {
	switch term := t.(type) {
	case rdf.Literal:
		return literalValue(term, vb)
	case rdf.BlankNode:
		id := term.String()
		if visiting[id] {
			return nil, fmt.Errorf("%w: cycle through %s", ErrBadStructure, id)
		}
		visiting[id] = true
		defer delete(visiting, id)
		return rebuildContainer(id, idx[id], idx, vb, visiting)
	default:
		return nil, fmt.Errorf("%w: unexpected term %s", ErrBadStructure, t.String())
	}
}

func rebuildContainer(id string, stmts []rdf.Statement, idx map[string][]rdf.Statement, vb vocab.Vocabulary, visiting map[string]bool) (any, error) {
	var class rdf.Term
	for _, st := range stmts {
		if st.P.Value == vocab.RDFType {
			class = st.O
			break
		}
	}

	switch class {
	case rdf.Term(vb.ClassObject()):
		return rebuildObject(stmts, idx, vb, visiting)
	case rdf.Term(vb.ClassArray()):
		return rebuildArray(id, stmts, idx, vb, visiting)
	default:
		return nil, fmt.Errorf("%w: node %s has no container type marker", ErrBadStructure, id)
	}
}

func rebuildObject(stmts []rdf.Statement, idx map[string][]rdf.Statement, vb vocab.Vocabulary, visiting map[string]bool) (any, error) {
	obj := make(map[string]any)
	for _, st := range stmts {
		key, ok := vb.PropertyKey(st.P)
		if !ok {
			continue
		}
		if _, dup := obj[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousKey, key)
		}
		val, err := rebuildNode(st.O, idx, vb, visiting)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		obj[key] = val
	}
	return obj, nil
}

func rebuildArray(id string, stmts []rdf.Statement, idx map[string][]rdf.Statement, vb vocab.Vocabulary, visiting map[string]bool) (any, error) {
	// Element order comes from the index statements alone; the
	// hasElement statements carry membership only.
	byIndex := make(map[int]rdf.Term)
	for _, st := range stmts {
		i, ok := vb.ElementIndex(st.P)
		if !ok {
			continue
		}
		byIndex[i] = st.O
	}

	arr := make([]any, len(byIndex))
	for i := range arr {
		elem, ok := byIndex[i]
		if !ok {
			return nil, fmt.Errorf("%w: array %s is missing index %d", ErrBadStructure, id, i)
		}
		val, err := rebuildNode(elem, idx, vb, visiting)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		arr[i] = val
	}
	return arr, nil
}

// literalValue maps a typed literal back to its Go representation.
// Unknown datatypes decode as strings, matching how plain literals read
// back from N-Quads files behave.
func literalValue(lit rdf.Literal, vb vocab.Vocabulary) (any, error) {
	if vb.IsNull(lit) {
		return nil, nil
	}
	switch lit.Datatype.Value {
	case vocab.XSDBoolean:
		return lit.Lexical == "true", nil
	case vocab.XSDInteger, vocab.XSDDouble:
		f, err := strconv.ParseFloat(lit.Lexical, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad numeric literal %q", ErrBadStructure, lit.Lexical)
		}
		return f, nil
	default:
		return lit.Lexical, nil
	}
}
