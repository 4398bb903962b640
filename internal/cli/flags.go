package cli

import (
	"github.com/spf13/cobra"

	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/pipeline"
)

// synthFlags holds the request and render flags shared by generate and prompt.
type synthFlags struct {
	opts    pipeline.Options
	formats string
	output  string
	noCache bool
}

// registerRequest adds the synthesis request flags.
func (f *synthFlags) registerRequest(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.opts.Archetype, "archetype", "a", "", "archetype: flower, lotus, star, diamond, spiral, mandala, geometric, traditional")
	fl.StringVarP(&f.opts.Symmetry, "symmetry", "s", "", "symmetry: rotational, bilateral, point, radial, none")
	fl.IntVarP(&f.opts.Complexity, "complexity", "c", 0, "complexity 1-9 (default 5)")
	fl.IntVarP(&f.opts.ElementCount, "count", "n", 0, "petals, points or segments (default 8)")
	fl.IntVarP(&f.opts.GridSize, "grid", "g", 0, "odd pulli grid size (default 9)")
}

// registerRender adds the output flags.
func (f *synthFlags) registerRender(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	fl.StringVar(&f.opts.Style, "style", "", "stroke style: curved (default), simple")
	fl.StringVar(&f.opts.VizType, "viz", "", "visualization: kolam (default), graph")
	fl.IntVar(&f.opts.Scale, "scale", 0, "PNG scale factor (default 2)")
	fl.BoolVar(&f.opts.Lattice, "lattice", false, "draw the full pulli grid")
	fl.BoolVar(&f.opts.Labels, "labels", false, "label graph nodes with their coordinates (--viz graph)")
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// options layers changed flags over base.
func (f *synthFlags) options(cmd *cobra.Command, base pipeline.Options) pipeline.Options {
	changed := cmd.Flags().Changed
	if changed("archetype") {
		base.Archetype = f.opts.Archetype
	}
	if changed("symmetry") {
		base.Symmetry = f.opts.Symmetry
	}
	if changed("complexity") {
		base.Complexity = f.opts.Complexity
	}
	if changed("count") {
		base.ElementCount = f.opts.ElementCount
	}
	if changed("grid") {
		base.GridSize = f.opts.GridSize
	}
	if changed("format") {
		base.Formats = parseFormats(f.formats)
	}
	if changed("style") {
		base.Style = f.opts.Style
	}
	if changed("viz") {
		base.VizType = f.opts.VizType
	}
	if changed("scale") {
		base.Scale = f.opts.Scale
	}
	if changed("lattice") {
		base.Lattice = f.opts.Lattice
	}
	if changed("labels") {
		base.Labels = f.opts.Labels
	}
	base.NoCache = f.noCache
	return base
}

// applyRequestFile copies the fields set in rf onto opts. It returns the
// file's output path, if any.
func applyRequestFile(opts *pipeline.Options, rf kolamio.RequestFile) string {
	if rf.Archetype != "" {
		opts.Archetype = string(rf.Archetype)
	}
	if rf.Symmetry != "" {
		opts.Symmetry = string(rf.Symmetry)
	}
	if rf.Complexity != 0 {
		opts.Complexity = rf.Complexity
	}
	if rf.ElementCount != 0 {
		opts.ElementCount = rf.ElementCount
	}
	if rf.GridSize != 0 {
		opts.GridSize = rf.GridSize
	}
	if rf.Prompt != "" {
		opts.Prompt = rf.Prompt
	}
	if rf.Guidance != nil {
		opts.Guidance = rf.Guidance
	}
	if len(rf.Render.Formats) > 0 {
		opts.Formats = rf.Render.Formats
	}
	if rf.Render.Style != "" {
		opts.Style = rf.Render.Style
	}
	if rf.Render.VizType != "" {
		opts.VizType = rf.Render.VizType
	}
	return rf.Render.Output
}
