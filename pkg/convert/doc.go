// Package convert implements the JSON→RDF structural mapping.
//
// The mapping walks a parsed JSON value depth-first and emits statements
// describing its shape into a graph accumulator:
//
//   - every object and array receives a fresh blank node from an
//     [Allocator], plus an rdf:type marker (Object or Array) that anchors
//     the node even when the container is empty
//   - object members become (node, property/<key>, child) statements in
//     document order; duplicate keys are kept, one statement each
//   - array elements become (node, hasElement, child) statements paired
//     with (node, index/<i>, child) so element order survives the
//     unordered RDF set
//   - scalars become typed literals; null becomes a designated sentinel
//     literal distinguishable from the string "null"
//
// [Convert] is the entry point: it validates the input, runs the walk,
// and emits the (document, hasRoot, root) statement that makes the graph
// entry point discoverable from the N-Quads file alone.
//
// [Rebuild] is the inverse traversal used to verify round-trip structure
// preservation: it reconstructs a JSON value from a statement set.
//
// JSON is traversed with tidwall/gjson rather than encoding/json because
// the mapping needs document key order and duplicate keys, both of which
// a Go map cannot represent.
package convert
