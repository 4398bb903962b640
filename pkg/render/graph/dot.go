package graph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels each node with its coordinates.
	// When false, nodes are unlabeled points.
	Detailed bool
}

func nodeID(d kolam.Dot) string { return fmt.Sprintf("d%d_%d", d.X, d.Y) }

// ToDOT converts a pattern to Graphviz DOT source. Nodes are pinned with
// pos="x,y!" (y flipped so row 0 is on top); use a layout engine that
// honors pins, as [RenderSVG] does.
func ToDOT(p kolam.Pattern, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	if opts.Detailed {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=8, width=0.35, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.12];\n")
	}
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("\n")

	// Endpoints that are not listed as dots still need a pinned node.
	nodes := make(map[kolam.Dot]bool, len(p.Dots))
	var order []kolam.Dot
	addNode := func(d kolam.Dot) {
		if !nodes[d] {
			nodes[d] = true
			order = append(order, d)
		}
	}
	for _, d := range p.Dots {
		addNode(d)
	}
	edges := p.UniqueConnections()
	for _, c := range edges {
		addNode(c.A)
		addNode(c.B)
	}
	counts := p.EdgeCounts()

	top := max(p.GridSize-1, 0)
	for _, d := range order {
		attrs := []string{fmt.Sprintf("pos=\"%d,%d!\"", d.X, top-d.Y)}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%d,%d", d.X, d.Y)))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(d), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range edges {
		if n := counts[c.Key()]; n > 1 {
			fmt.Fprintf(&buf, "  %s -- %s [penwidth=%.1f];\n", nodeID(c.A), nodeID(c.B), 1.5*float64(n))
			continue
		}
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(c.A), nodeID(c.B))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the diagram scales like the kolam drawing.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
