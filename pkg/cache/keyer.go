package cache

import (
	"strings"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

// Keyer names cache entries.
type Keyer interface {
	// PatternKey names the synthesized pattern for a request.
	PatternKey(req kolam.Request) string

	// ArtifactKey names a rendered artifact of a pattern.
	ArtifactKey(patternHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Style   string `json:"style,omitempty"`
	VizType string `json:"viz_type"`
	Scale   int    `json:"scale,omitempty"`
}

// DefaultKeyer hashes normalized inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PatternKey normalizes req first so requests that synthesize identically
// share an entry. Archetype and symmetry are compared case-insensitively.
func (DefaultKeyer) PatternKey(req kolam.Request) string {
	req = req.Normalize()
	req.Archetype = kolam.Archetype(strings.ToLower(string(req.Archetype)))
	req.Symmetry = kolam.Symmetry(strings.ToLower(string(req.Symmetry)))
	return hashKey("pattern", req)
}

// ArtifactKey combines the pattern hash with the render options.
func (DefaultKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, patternHash, opts)
}

var _ Keyer = DefaultKeyer{}
