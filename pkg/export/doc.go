// Package export converts an RDF statement set into a GraphViz DOT
// description for visualization.
//
// The conversion is a one-pass edge-lister: each distinct subject or
// object term becomes a DOT node and each statement becomes a directed
// edge labeled with its predicate. Blank nodes, IRIs, and literals get
// different shapes so the structure reads at a glance; all styling is
// cosmetic and not part of any contract.
//
// RenderSVG and RenderPNG rasterize the DOT text in-process through the
// goccy/go-graphviz layout engine.
package export
