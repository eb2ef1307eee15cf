// Package vocab defines the assertion vocabulary used to describe JSON
// structure as RDF.
//
// Every quad produced by the converter uses a predicate from this package:
// either a fixed structural term (hasRoot, hasElement, rdf:type) or a term
// derived from the input document (property/<key>, index/<i>). Key-derived
// terms are percent-encoded so that arbitrary JSON keys always yield valid
// IRIs, and the encoding is reversible for graph consumers.
package vocab

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

// DefaultNamespace is the base IRI prefix for converter vocabulary terms.
const DefaultNamespace = "https://json-to-rdf.dev/vocab/"

// Standard ontology IRIs referenced by the converter.
const (
	// RDFType is the rdf:type predicate used for container type markers.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// XSDString is the datatype IRI for JSON string literals.
	XSDString = "http://www.w3.org/2001/XMLSchema#string"

	// XSDInteger is the datatype IRI for JSON numbers without a fraction
	// or exponent part.
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"

	// XSDDouble is the datatype IRI for all other JSON numbers.
	XSDDouble = "http://www.w3.org/2001/XMLSchema#double"

	// XSDBoolean is the datatype IRI for JSON true/false literals.
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
)

// Local name segments appended to the namespace. Exposed for consumers that
// match predicates textually (schema summaries, DOT labels).
const (
	localDocument   = "document"
	localHasRoot    = "hasRoot"
	localHasElement = "hasElement"
	localObject     = "Object"
	localArray      = "Array"
	localNull       = "Null"
	propertyPrefix  = "property/"
	indexPrefix     = "index/"
)

// Vocabulary builds vocabulary IRIs for a configurable base namespace.
// The zero value is not usable; construct instances with New or Default.
type Vocabulary struct {
	ns string
}

// New returns a Vocabulary rooted at the given namespace.
// An empty namespace falls back to DefaultNamespace. The namespace must end
// with "/" or "#"; a trailing "/" is appended otherwise so derived terms
// stay well-formed.
func New(namespace string) Vocabulary {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if !strings.HasSuffix(namespace, "/") && !strings.HasSuffix(namespace, "#") {
		namespace += "/"
	}
	return Vocabulary{ns: namespace}
}

// Default returns the Vocabulary rooted at DefaultNamespace.
func Default() Vocabulary { return New(DefaultNamespace) }

// Namespace returns the base IRI prefix.
func (v Vocabulary) Namespace() string { return v.ns }

// Document is the well-known IRI that anchors the graph entry point.
// The conversion emits exactly one (Document, hasRoot, root) quad.
func (v Vocabulary) Document() rdf.IRI { return rdf.IRI{Value: v.ns + localDocument} }

// HasRoot links the document IRI to the root node of the converted value.
func (v Vocabulary) HasRoot() rdf.IRI { return rdf.IRI{Value: v.ns + localHasRoot} }

// HasElement links an array node to one of its element nodes.
// Element order is carried separately by Index predicates.
func (v Vocabulary) HasElement() rdf.IRI { return rdf.IRI{Value: v.ns + localHasElement} }

// ClassObject marks a blank node allocated for a JSON object.
func (v Vocabulary) ClassObject() rdf.IRI { return rdf.IRI{Value: v.ns + localObject} }

// ClassArray marks a blank node allocated for a JSON array.
func (v Vocabulary) ClassArray() rdf.IRI { return rdf.IRI{Value: v.ns + localArray} }

// NullDatatype is the datatype IRI of the null sentinel literal.
func (v Vocabulary) NullDatatype() rdf.IRI { return rdf.IRI{Value: v.ns + localNull} }

// NullLiteral is the designated literal representing JSON null.
// Its datatype keeps it distinguishable from the string "null".
func (v Vocabulary) NullLiteral() rdf.Literal {
	return rdf.Literal{Lexical: "null", Datatype: v.NullDatatype()}
}

// Property derives the predicate IRI for an object key. The key is
// percent-encoded, so keys containing spaces, slashes, or non-ASCII
// characters still produce valid IRIs. PropertyKey reverses the encoding.
func (v Vocabulary) Property(key string) rdf.IRI {
	return rdf.IRI{Value: v.ns + propertyPrefix + url.PathEscape(key)}
}

// Index derives the order-carrying predicate IRI for array position i.
func (v Vocabulary) Index(i int) rdf.IRI {
	return rdf.IRI{Value: v.ns + indexPrefix + strconv.Itoa(i)}
}

// PropertyKey reports whether iri is a key-derived property predicate and,
// if so, returns the decoded JSON key.
func (v Vocabulary) PropertyKey(iri rdf.IRI) (string, bool) {
	rest, ok := strings.CutPrefix(iri.Value, v.ns+propertyPrefix)
	if !ok {
		return "", false
	}
	key, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return key, true
}

// ElementIndex reports whether iri is an index predicate and, if so,
// returns the array position it encodes.
func (v Vocabulary) ElementIndex(iri rdf.IRI) (int, bool) {
	rest, ok := strings.CutPrefix(iri.Value, v.ns+indexPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// IsNull reports whether lit is the null sentinel of this vocabulary.
func (v Vocabulary) IsNull(lit rdf.Literal) bool {
	return lit.Datatype == v.NullDatatype() && lit.Lexical == "null"
}

// Compact strips the vocabulary namespace from iri and undoes key
// percent-encoding, yielding display names like "property/title" or
// "index/3". IRIs outside the namespace fall back to Local.
func (v Vocabulary) Compact(iri rdf.IRI) string {
	rest, ok := strings.CutPrefix(iri.Value, v.ns)
	if !ok {
		return Local(iri)
	}
	if dec, err := url.PathUnescape(rest); err == nil {
		return dec
	}
	return rest
}

// Local compacts an IRI to its final path or fragment segment for display.
// Percent-encoding is undone when possible. Used for DOT edge labels and
// schema summaries; not reversible for arbitrary IRIs.
func Local(iri rdf.IRI) string {
	s := iri.Value
	if i := strings.LastIndexAny(s, "#"); i >= 0 && i < len(s)-1 {
		s = s[i+1:]
	} else if i := strings.LastIndex(s, "/"); i >= 0 && i < len(s)-1 {
		s = s[i+1:]
	}
	if dec, err := url.PathUnescape(s); err == nil {
		return dec
	}
	return s
}
