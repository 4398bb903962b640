// Package cache stores synthesized patterns and rendered artifacts.
//
// Backends:
//   - FileCache: one JSON entry per key under the user cache directory (CLI)
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
//
// Keys come from a [Keyer] so that the CLI, the pipeline and the HTTP server
// agree on names. Synthesis is deterministic, so a pattern key is a pure
// function of the normalized request and an artifact key a pure function of
// the pattern hash and render options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default lifetimes. Patterns never change for a given request, but the
// generator can be revised between releases.
const (
	TTLPattern  = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)
