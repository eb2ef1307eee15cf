package vocab

import (
	"strings"
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"
)

func TestNewNamespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Empty", in: "", want: DefaultNamespace},
		{name: "TrailingSlash", in: "https://example.org/v/", want: "https://example.org/v/"},
		{name: "TrailingHash", in: "https://example.org/v#", want: "https://example.org/v#"},
		{name: "NoTerminator", in: "https://example.org/v", want: "https://example.org/v/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.in).Namespace(); got != tt.want {
				t.Errorf("Namespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	keys := []string{
		"title",
		"two words",
		"path/with/slashes",
		"per%cent",
		"ünïcode",
		"",
	}

	vb := Default()
	for _, key := range keys {
		iri := vb.Property(key)
		got, ok := vb.PropertyKey(iri)
		if !ok {
			t.Errorf("PropertyKey(%q) not recognized", iri.Value)
			continue
		}
		if got != key {
			t.Errorf("PropertyKey(Property(%q)) = %q", key, got)
		}
	}
}

func TestPropertyEscaping(t *testing.T) {
	iri := Default().Property("a b/c")
	if strings.Contains(iri.Value, " ") {
		t.Errorf("Property IRI contains a raw space: %q", iri.Value)
	}
	// The encoded key must stay a single path segment.
	rest := strings.TrimPrefix(iri.Value, DefaultNamespace+"property/")
	if strings.Contains(rest, "/") {
		t.Errorf("Property IRI key spans segments: %q", iri.Value)
	}
}

func TestElementIndex(t *testing.T) {
	vb := Default()

	for _, i := range []int{0, 1, 42, 9999} {
		got, ok := vb.ElementIndex(vb.Index(i))
		if !ok || got != i {
			t.Errorf("ElementIndex(Index(%d)) = %d, %v", i, got, ok)
		}
	}

	if _, ok := vb.ElementIndex(vb.HasElement()); ok {
		t.Error("ElementIndex should reject hasElement")
	}
	if _, ok := vb.ElementIndex(rdf.IRI{Value: DefaultNamespace + "index/-1"}); ok {
		t.Error("ElementIndex should reject negative indexes")
	}
}

func TestNullLiteral(t *testing.T) {
	vb := Default()

	if !vb.IsNull(vb.NullLiteral()) {
		t.Error("IsNull(NullLiteral()) = false")
	}
	// The string "null" must stay distinguishable from JSON null.
	plain := rdf.Literal{Lexical: "null", Datatype: rdf.IRI{Value: XSDString}}
	if vb.IsNull(plain) {
		t.Error(`IsNull("null"^^xsd:string) = true`)
	}
}

func TestCompact(t *testing.T) {
	vb := Default()
	tests := []struct {
		name string
		iri  rdf.IRI
		want string
	}{
		{name: "Structural", iri: vb.HasElement(), want: "hasElement"},
		{name: "Property", iri: vb.Property("two words"), want: "property/two words"},
		{name: "Index", iri: vb.Index(3), want: "index/3"},
		{name: "Foreign", iri: rdf.IRI{Value: RDFType}, want: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vb.Compact(tt.iri); got != tt.want {
				t.Errorf("Compact(%q) = %q, want %q", tt.iri.Value, got, tt.want)
			}
		})
	}
}
