// Package graph provides the in-memory RDF quad accumulator and its
// N-Quads file I/O.
//
// This package sits at the serialization boundary of the converter: the
// walker populates a [Graph] with statements, and the graph is written to
// or read from disk as N-Quads. Text encoding and decoding (including
// literal escaping) is delegated to the rdf-go toolkit, so the output is
// standards-compliant without any hand-rolled escaping here.
//
// A Graph is monotonic: statements are only ever appended, never removed
// or rewritten. Serialization does not mutate the graph, so emitting the
// same graph twice yields the same statement set.
package graph
