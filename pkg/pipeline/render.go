package pipeline

import (
	"context"
	"fmt"

	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/render"
	"github.com/kolamstudio/kolam/pkg/render/drawing"
	"github.com/kolamstudio/kolam/pkg/render/graph"
)

// RenderPattern generates output artifacts in the requested formats.
// opts must have passed ValidateForRender.
func RenderPattern(ctx context.Context, p kolam.Pattern, opts Options) (map[string][]byte, error) {
	if opts.VizType == VizGraph {
		return renderGraph(ctx, p, opts)
	}
	return renderKolam(ctx, p, opts)
}

// renderKolam generates native kolam drawings.
func renderKolam(ctx context.Context, p kolam.Pattern, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case render.FormatSVG:
			data = drawing.RenderSVG(p, svgOpts...)
		case render.FormatPNG:
			data, err = drawing.RenderPNG(ctx, p, float64(opts.Scale), svgOpts...)
		case render.FormatPDF:
			data, err = drawing.RenderPDF(ctx, p, svgOpts...)
		case render.FormatJSON:
			data, err = kolamio.Encode(p)
		default:
			return nil, fmt.Errorf("unsupported kolam format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderGraph generates Graphviz drawings of the connection graph.
func renderGraph(ctx context.Context, p kolam.Pattern, opts Options) (map[string][]byte, error) {
	dot := graph.ToDOT(p, graph.Options{Detailed: opts.Labels})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case render.FormatSVG:
			data, err = graph.RenderSVG(ctx, dot)
		case render.FormatPNG:
			data, err = graph.RenderPNG(ctx, dot, float64(opts.Scale))
		case render.FormatPDF:
			data, err = graph.RenderPDF(ctx, dot)
		case render.FormatJSON:
			data, err = kolamio.Encode(p)
		default:
			return nil, fmt.Errorf("unsupported graph format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds kolam SVG rendering options.
func buildSVGOptions(opts Options) ([]drawing.SVGOption, error) {
	style, err := drawing.ParseStyle(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []drawing.SVGOption{drawing.WithStyle(style), drawing.WithTitle()}
	if opts.Lattice {
		svgOpts = append(svgOpts, drawing.WithLattice())
	}
	return svgOpts, nil
}
