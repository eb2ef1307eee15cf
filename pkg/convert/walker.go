package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/tidwall/gjson"

	"github.com/johnymontana/json-to-rdf/pkg/graph"
	"github.com/johnymontana/json-to-rdf/pkg/vocab"
)

var (
	// ErrMalformedJSON is returned by [Convert] when the input is not
	// syntactically valid JSON. The wrapped message carries the line and
	// column of the first syntax error when it can be determined.
	ErrMalformedJSON = errors.New("input is not valid JSON")

	// ErrDepthExceeded is returned when the input nests containers deeper
	// than Options.MaxDepth. Bounding the walk keeps adversarial inputs
	// from exhausting the goroutine stack.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrUnsupportedValue is returned when the walker meets a value kind
	// outside the JSON grammar. With a conformant parser this indicates
	// an internal invariant violation, not a user error.
	ErrUnsupportedValue = errors.New("unsupported JSON value")
)

// DefaultMaxDepth bounds container nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options configures a conversion run.
type Options struct {
	// Vocab supplies the predicate vocabulary. The zero value selects
	// the default namespace.
	Vocab vocab.Vocabulary

	// MaxDepth bounds container nesting; zero means DefaultMaxDepth.
	MaxDepth int

	// Allocator supplies blank nodes. When nil a fresh allocator with a
	// new run prefix is created.
	Allocator *Allocator
}

// Walker maps JSON values onto graph nodes, emitting structural
// statements into a graph accumulator as it descends. A Walker is pure
// given its allocator: it holds no other mutable state between calls.
type Walker struct {
	alloc    *Allocator
	vocab    vocab.Vocabulary
	maxDepth int
}

// NewWalker creates a Walker from opts, filling in defaults for the
// vocabulary, depth bound, and allocator.
func NewWalker(opts Options) *Walker {
	vb := opts.Vocab
	if vb == (vocab.Vocabulary{}) {
		vb = vocab.Default()
	}
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	alloc := opts.Allocator
	if alloc == nil {
		alloc = NewAllocator()
	}
	return &Walker{alloc: alloc, vocab: vb, maxDepth: depth}
}

// Allocator returns the walker's blank node allocator.
func (w *Walker) Allocator() *Allocator { return w.alloc }

// Walk recursively maps v to a graph node and adds all statements
// describing its structure to g. Containers return their allocated blank
// node; scalars return a literal and add nothing (the statement linking a
// scalar to its parent is emitted by the parent's handling).
func (w *Walker) Walk(v gjson.Result, g *graph.Graph) (rdf.Term, error) {
	return w.walk(v, g, 0)
}

func (w *Walker) walk(v gjson.Result, g *graph.Graph, depth int) (rdf.Term, error) {
	switch {
	case v.IsObject():
		return w.walkObject(v, g, depth)
	case v.IsArray():
		return w.walkArray(v, g, depth)
	}

	switch v.Type {
	case gjson.String:
		return rdf.Literal{Lexical: v.Str, Datatype: rdf.IRI{Value: vocab.XSDString}}, nil
	case gjson.Number:
		return numberLiteral(v.Raw), nil
	case gjson.True:
		return rdf.Literal{Lexical: "true", Datatype: rdf.IRI{Value: vocab.XSDBoolean}}, nil
	case gjson.False:
		return rdf.Literal{Lexical: "false", Datatype: rdf.IRI{Value: vocab.XSDBoolean}}, nil
	case gjson.Null:
		return w.vocab.NullLiteral(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, v.Type)
	}
}

// walkObject allocates a blank node for a JSON object and emits one
// property statement per member, in document order. Duplicate keys are
// kept: each occurrence produces its own statement (keep-all policy).
func (w *Walker) walkObject(v gjson.Result, g *graph.Graph, depth int) (rdf.Term, error) {
	if depth >= w.maxDepth {
		return nil, fmt.Errorf("%w (limit %d)", ErrDepthExceeded, w.maxDepth)
	}

	node := w.alloc.Next()
	g.Add(node, rdf.IRI{Value: vocab.RDFType}, w.vocab.ClassObject())

	var walkErr error
	v.ForEach(func(key, member gjson.Result) bool {
		child, err := w.walk(member, g, depth+1)
		if err != nil {
			walkErr = fmt.Errorf("key %q: %w", key.Str, err)
			return false
		}
		g.Add(node, w.vocab.Property(key.Str), child)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return node, nil
}

// walkArray allocates a blank node for a JSON array and emits, per
// element, a hasElement statement plus an index statement carrying the
// element's position. Plain RDF sets are unordered; without the index
// statement array order would be lost on reload.
func (w *Walker) walkArray(v gjson.Result, g *graph.Graph, depth int) (rdf.Term, error) {
	if depth >= w.maxDepth {
		return nil, fmt.Errorf("%w (limit %d)", ErrDepthExceeded, w.maxDepth)
	}

	node := w.alloc.Next()
	g.Add(node, rdf.IRI{Value: vocab.RDFType}, w.vocab.ClassArray())

	i := 0
	var walkErr error
	v.ForEach(func(_, elem gjson.Result) bool {
		child, err := w.walk(elem, g, depth+1)
		if err != nil {
			walkErr = fmt.Errorf("index %d: %w", i, err)
			return false
		}
		g.Add(node, w.vocab.HasElement(), child)
		g.Add(node, w.vocab.Index(i), child)
		i++
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return node, nil
}

// numberLiteral types a JSON number literal. Numbers without a fraction
// or exponent part become xsd:integer, everything else xsd:double. The
// lexical form is the input token verbatim.
func numberLiteral(raw string) rdf.Literal {
	datatype := vocab.XSDInteger
	if strings.ContainsAny(raw, ".eE") {
		datatype = vocab.XSDDouble
	}
	return rdf.Literal{Lexical: raw, Datatype: rdf.IRI{Value: datatype}}
}

// Convert parses data as JSON, walks it into g, and emits the
// (document, hasRoot, root) statement anchoring the graph entry point.
// It returns the root term so callers can also start traversal without
// re-reading the file.
//
// On invalid input no statements are added to g.
func Convert(data []byte, g *graph.Graph, opts Options) (rdf.Term, error) {
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data)
	}

	w := NewWalker(opts)
	root, err := w.Walk(gjson.ParseBytes(data), g)
	if err != nil {
		return nil, err
	}
	g.Add(w.vocab.Document(), w.vocab.HasRoot(), root)
	return root, nil
}

// syntaxError re-parses invalid input with the standard decoder, which
// reports the byte offset of the first syntax error, and converts that
// offset to a line and column.
func syntaxError(data []byte) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		// gjson rejected input the stdlib accepts; report without position.
		return ErrMalformedJSON
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := offsetPosition(data, syn.Offset)
		return fmt.Errorf("%w: line %d, column %d: %s", ErrMalformedJSON, line, col, syn.Error())
	}
	return fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
}

// offsetPosition converts a byte offset into 1-based line and column.
func offsetPosition(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
