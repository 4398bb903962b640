// Package pipeline provides the synthesize → render pipeline for kolam
// patterns.
//
// This package implements the pipeline that the CLI and the HTTP API share.
// Centralizing it keeps defaults, validation and caching identical across
// entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Guidance: Merge prompt analysis or a raw guidance record into the request
//  2. Synthesize: Turn the request into a [kolam.Pattern]
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Synthesis and rendering are cached independently. Patterns are keyed by the
// normalized request, artifacts by the pattern's content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Archetype: "lotus",
//	    GridSize:  11,
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Render a pattern obtained elsewhere (for example an imported file):
//
//	artifacts, err := runner.Render(ctx, pattern, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kolamstudio/kolam/pkg/cache"
	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/guidance"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/render"
	"github.com/kolamstudio/kolam/pkg/render/drawing"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultGridSize is the lattice size when neither the caller nor the
	// guidance picks one.
	DefaultGridSize = 9

	// DefaultScale is the PNG rasterization scale.
	DefaultScale = 2

	// MaxScale bounds PNG output size.
	MaxScale = 8

	// DefaultStyle is the default stroke style.
	DefaultStyle = drawing.StyleCurved
)

// Visualization types.
const (
	// VizKolam draws the pattern as a kolam: lattice, dots and strokes.
	VizKolam = "kolam"

	// VizGraph draws the connection graph with Graphviz.
	VizGraph = "graph"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizKolam

// VizTypes returns the supported visualization types.
func VizTypes() []string { return []string{VizKolam, VizGraph} }

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
//
// Zero request fields mean "unset": they are filled from guidance when a
// prompt or guidance record supplies a hint and from defaults otherwise.
type Options struct {
	// Request options
	Archetype    string `json:"archetype,omitempty"`
	Symmetry     string `json:"symmetry,omitempty"`
	Complexity   int    `json:"complexity,omitempty"`
	ElementCount int    `json:"element_count,omitempty"`
	GridSize     int    `json:"grid_size,omitempty"`

	// Guidance options. A raw Guidance record takes precedence over Prompt.
	Prompt   string         `json:"prompt,omitempty"`
	Guidance map[string]any `json:"guidance,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	VizType string   `json:"viz_type,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	Lattice bool     `json:"lattice,omitempty"` // Draw the full pulli grid behind the pattern
	Labels  bool     `json:"labels,omitempty"`  // Label graph nodes with their coordinates
	NoCache bool     `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Pattern is the synthesized pattern.
	Pattern kolam.Pattern

	// Request is the final request after guidance and defaults were merged.
	Request kolam.Request

	// PatternHash is the content hash of the encoded pattern.
	PatternHash string

	// Guidance is the validated guidance record, nil when none was supplied.
	Guidance *guidance.Guidance

	// Coerced lists guidance fields that were replaced by defaults.
	Coerced []guidance.Coercion

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Dots        int
	Connections int
	UniqueEdges int
	SynthTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PatternHit bool // Whether the pattern came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if vizType != VizKolam && vizType != VizGraph {
		return kerrors.New(kerrors.ErrCodeInvalidVizType, "invalid viz type: %q (must be one of: kolam, graph)", vizType)
	}
	return nil
}

// ValidateSymmetry checks that a symmetry label is known.
func ValidateSymmetry(symmetry string) error {
	if _, ok := kolam.ParseSymmetry(symmetry); !ok {
		return kerrors.New(kerrors.ErrCodeInvalidSymmetry, "invalid symmetry: %q", symmetry)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks explicit request fields and applies render
// defaults. Unknown archetypes are accepted: synthesis falls back to the
// geometric generator and reports it on the pattern.
//
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSynthesis(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSynthesis checks the explicitly set request fields.
func (o *Options) ValidateForSynthesis() error {
	if o.Symmetry != "" {
		if err := ValidateSymmetry(o.Symmetry); err != nil {
			return err
		}
	}
	if o.Complexity != 0 {
		if err := kerrors.ValidateComplexity(o.Complexity); err != nil {
			return err
		}
	}
	if o.ElementCount != 0 {
		if err := kerrors.ValidateCount(o.ElementCount); err != nil {
			return err
		}
	}
	if o.GridSize != 0 {
		if err := kerrors.ValidateGridSize(o.GridSize); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := drawing.ParseStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 1 || o.Scale > MaxScale {
		return kerrors.New(kerrors.ErrCodeInvalidInput, "scale must be between 1 and %d, got %d", MaxScale, o.Scale)
	}
	return nil
}

// GuidanceResult validates the attached guidance, if any. A raw record wins
// over prompt analysis. ok is false when neither is set.
func (o *Options) GuidanceResult() (res guidance.Result, ok bool) {
	switch {
	case o.Guidance != nil:
		return guidance.Validate(guidance.Raw(o.Guidance)), true
	case o.Prompt != "":
		return guidance.FromPrompt(o.Prompt), true
	default:
		return guidance.Result{}, false
	}
}

// Request builds the synthesis request. Precedence per field is explicit
// option, then accepted guidance hint, then default.
func (o *Options) Request() (kolam.Request, *guidance.Result) {
	req := kolam.Request{
		Archetype:    guidance.DefaultArchetype,
		Symmetry:     guidance.DefaultSymmetry,
		Complexity:   guidance.DefaultComplexity,
		ElementCount: guidance.DefaultCount,
		GridSize:     DefaultGridSize,
	}

	var gres *guidance.Result
	if res, ok := o.GuidanceResult(); ok {
		req = res.Apply(req)
		gres = &res
	}

	if o.Archetype != "" {
		a, _ := kolam.ParseArchetype(o.Archetype)
		req.Archetype = a
	}
	if o.Symmetry != "" {
		s, _ := kolam.ParseSymmetry(o.Symmetry)
		req.Symmetry = s
	}
	if o.Complexity != 0 {
		req.Complexity = o.Complexity
	}
	if o.ElementCount != 0 {
		req.ElementCount = o.ElementCount
	}
	if o.GridSize != 0 {
		req.GridSize = o.GridSize
	}
	return req, gres
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// JSON output depends on the pattern alone.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	if format == render.FormatJSON {
		return cache.ArtifactKeyOpts{Format: format}
	}
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		VizType: o.VizType,
	}
	switch o.VizType {
	case VizKolam:
		opts.Style = o.Style
		if o.Lattice {
			opts.Style += "+lattice"
		}
	case VizGraph:
		if o.Labels {
			opts.Style = "labels"
		}
	}
	if format == render.FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
