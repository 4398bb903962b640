// Package drawing renders kolam patterns as SVG.
//
// # Overview
//
// [RenderSVG] lays the pattern on its pulli lattice: one cell per grid step,
// a margin of one cell on every side, dots as filled circles and each
// distinct connection as a stroke. Row 0 is at the top.
//
//	svg := drawing.RenderSVG(p,
//	    drawing.WithStyle(drawing.Curved{}),
//	    drawing.WithLattice(),
//	)
//
// # Styles
//
//   - [Simple]: straight strokes between dots
//   - [Curved]: each stroke bows into a quadratic arc, alternating sides,
//     which gives the looped look of a hand-drawn kolam
//
// Use [ParseStyle] to resolve a style name from flags or requests.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first and convert it with
// [render.ToPDF] and [render.ToPNG], which require rsvg-convert.
//
// [render.ToPDF]: github.com/kolamstudio/kolam/pkg/render.ToPDF
// [render.ToPNG]: github.com/kolamstudio/kolam/pkg/render.ToPNG
package drawing
