package convert

import (
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/google/uuid"
)

// Allocator produces fresh blank node identifiers for JSON containers.
//
// Identifiers are sequential within a run and carry a random per-run
// prefix, so labels from separate conversion runs do not collide when
// their N-Quads outputs are concatenated. Blank node identity is still
// scoped to a single graph; the prefix only avoids accidental label
// reuse across files.
//
// Allocator is not safe for concurrent use. The conversion is
// single-threaded, so no locking is needed.
type Allocator struct {
	prefix string
	next   int
}

// NewAllocator creates an Allocator with a UUID-derived run prefix.
func NewAllocator() *Allocator {
	// First 8 hex chars of a v4 UUID keep labels short but distinct
	// across runs.
	return &Allocator{prefix: "b" + uuid.NewString()[:8]}
}

// Next returns a blank node distinct from every node previously returned
// by this Allocator.
func (a *Allocator) Next() rdf.BlankNode {
	id := a.prefix + "-" + strconv.Itoa(a.next)
	a.next++
	return rdf.BlankNode{ID: id}
}

// Count returns the number of blank nodes allocated so far.
func (a *Allocator) Count() int { return a.next }
