package cache

import "github.com/kolamstudio/kolam/pkg/kolam"

// ScopedKeyer wraps a Keyer with a prefix so several deployments (or a
// server and a CLI) can share one redis without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "kolam:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PatternKey generates a prefixed key for pattern caching.
func (k *ScopedKeyer) PatternKey(req kolam.Request) string {
	return k.prefix + k.inner.PatternKey(req)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(patternHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(patternHash, opts)
}
