// Package render turns kolam patterns into images.
//
// # Overview
//
// This package contains the shared format conversion used by both
// visualizations:
//
//   - Kolam drawing (in [kolam] subpackage): the pulli lattice with dots
//     and strokes, drawn natively as SVG
//   - Connection graph (in [graph] subpackage): the pattern's edges as a
//     Graphviz diagram
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := kolam.RenderSVG(p, kolam.WithStyle(kolam.Curved{}))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [kolam]: github.com/kolamstudio/kolam/pkg/render/kolam
// [graph]: github.com/kolamstudio/kolam/pkg/render/graph
package render
