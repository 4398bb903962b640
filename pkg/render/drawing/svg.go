package drawing

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/render"
)

// Palette holds the SVG colors.
type Palette struct {
	Background string
	Lattice    string
	Dot        string
	Stroke     string
}

// DefaultPalette is rice flour on a dark threshold.
var DefaultPalette = Palette{
	Background: "#3b2a20",
	Lattice:    "#6b5444",
	Dot:        "#f5f0e6",
	Stroke:     "#ffffff",
}

// DefaultCellSize is the distance between lattice points in SVG units.
const DefaultCellSize = 40.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style   Style
	cell    float64
	lattice bool
	title   bool
	palette Palette
}

func WithStyle(s Style) SVGOption         { return func(r *svgRenderer) { r.style = s } }
func WithCellSize(size float64) SVGOption { return func(r *svgRenderer) { r.cell = size } }
func WithLattice() SVGOption              { return func(r *svgRenderer) { r.lattice = true } }
func WithTitle() SVGOption                { return func(r *svgRenderer) { r.title = true } }
func WithPalette(p Palette) SVGOption     { return func(r *svgRenderer) { r.palette = p } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: Simple{}, cell: DefaultCellSize, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cell <= 0 {
		r.cell = DefaultCellSize
	}
	if r.style == nil {
		r.style = Simple{}
	}
	return r
}

// RenderSVG draws p. Repeated connections are drawn once.
func RenderSVG(p kolam.Pattern, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	size := max(p.GridSize, 1)
	side := float64(size-1)*r.cell + 2*r.cell

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		side, side, side, side)

	if r.title {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(titleFor(p)))
		if p.Description != "" {
			fmt.Fprintf(&buf, "  <desc>%s</desc>\n", html.EscapeString(p.Description))
		}
	}

	renderStyleSheet(&buf, r)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.palette.Background)

	if r.lattice {
		buf.WriteString(`  <g class="lattice">` + "\n")
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				cx, cy := r.point(kolam.Dot{X: x, Y: y})
				fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, r.cell*0.05)
			}
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString(`  <g class="strokes">` + "\n")
	for i, c := range p.UniqueConnections() {
		x1, y1 := r.point(c.A)
		x2, y2 := r.point(c.B)
		r.style.RenderStroke(&buf, Stroke{X1: x1, Y1: y1, X2: x2, Y2: y2, Index: i})
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="dots">` + "\n")
	for _, d := range p.Dots {
		cx, cy := r.point(d)
		fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, r.cell*0.1)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderStyleSheet(buf *bytes.Buffer, r svgRenderer) {
	fmt.Fprintf(buf, `  <style>
    .lattice circle { fill: %s; }
    .dots circle { fill: %s; }
    .stroke { fill: none; stroke: %s; stroke-width: %.1f; stroke-linecap: round; }
  </style>
`, r.palette.Lattice, r.palette.Dot, r.palette.Stroke, r.cell*0.08)
}

func (r svgRenderer) point(d kolam.Dot) (float64, float64) {
	return r.cell + float64(d.X)*r.cell, r.cell + float64(d.Y)*r.cell
}

func titleFor(p kolam.Pattern) string {
	if p.Archetype == "" {
		return "kolam"
	}
	return fmt.Sprintf("%s kolam", p.Archetype)
}

// RenderPDF renders p as PDF via SVG conversion.
func RenderPDF(ctx context.Context, p kolam.Pattern, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(p, opts...))
}

// RenderPNG renders p as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, p kolam.Pattern, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(ctx, RenderSVG(p, opts...), scale)
}
