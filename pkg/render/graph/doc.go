// Package graph renders a kolam's connections as a node-link diagram.
//
// # Overview
//
// Each dot becomes a Graphviz node pinned at its lattice position and each
// distinct connection an undirected edge. Connections that a generator
// emitted more than once are drawn thicker, which makes overlapping passes
// visible. The diagram is laid out with neato so pinned positions are kept.
//
// # Usage
//
//	dot := graph.ToDOT(p, graph.Options{})
//	svg, err := graph.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := graph.RenderPDF(ctx, dot)
//	png, err := graph.RenderPNG(ctx, dot, 2.0)
//
// # Options
//
//   - Detailed: label nodes with their coordinates
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package graph
