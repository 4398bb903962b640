package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kolamstudio/kolam/pkg/cache"
	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete guidance → synthesize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Guidance
	req, gres := opts.Request()
	result.Request = req
	if gres != nil {
		result.Guidance = &gres.Guidance
		result.Coerced = gres.Coerced
		for _, c := range gres.Coerced {
			r.Logger.Debug("guidance coerced", "field", c.Field, "reason", c.Reason)
		}
	}

	// Stage 2: Synthesize
	synthStart := time.Now()
	p, hit, err := r.SynthesizeWithCacheInfo(ctx, req, opts)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	result.Pattern = p
	result.Stats.SynthTime = time.Since(synthStart)
	result.CacheInfo.PatternHit = hit

	stats := p.Stats()
	result.Stats.Dots = stats.Dots
	result.Stats.Connections = stats.Connections
	result.Stats.UniqueEdges = stats.UniqueEdges

	if p.Fallback {
		r.Logger.Warn("unknown archetype, used geometric", "requested", p.Requested)
	}
	r.Logger.Info("synthesized pattern",
		"archetype", p.Archetype,
		"dots", stats.Dots,
		"connections", stats.Connections,
		"cached", hit,
		"duration", result.Stats.SynthTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.PatternHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"viz", opts.VizType,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SynthesizeWithCacheInfo synthesizes req with caching and returns cache hit info.
func (r *Runner) SynthesizeWithCacheInfo(ctx context.Context, req kolam.Request, opts Options) (kolam.Pattern, bool, error) {
	if err := ctx.Err(); err != nil {
		return kolam.Pattern{}, false, err
	}

	cacheKey := r.Keyer.PatternKey(req)

	// Try cache first (unless disabled)
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			p, _, err := kolamio.Decode(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "pattern")
				return p, true, nil // Cache hit
			}
			// If decoding fails, fall through to resynthesize
		}
		observability.Cache().OnCacheMiss(ctx, "pattern")
	}

	hooks := observability.Pipeline()
	hooks.OnSynthesizeStart(ctx, string(req.Archetype))
	start := time.Now()
	p := kolam.Synthesize(req)
	hooks.OnSynthesizeComplete(ctx, string(p.Archetype), len(p.Dots), len(p.Connections), time.Since(start))

	// Cache the result
	if !opts.NoCache {
		r.store(ctx, "pattern", cacheKey, p, cache.TTLPattern)
	}

	return p, false, nil // Cache miss
}

// Synthesize is a convenience wrapper that calls SynthesizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Synthesize(ctx context.Context, req kolam.Request, opts Options) (kolam.Pattern, error) {
	p, _, err := r.SynthesizeWithCacheInfo(ctx, req, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns the
// pattern hash and cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p kolam.Pattern, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	// Compute cache key from pattern data
	patternData, err := kolamio.Encode(p)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize pattern for cache key: %w", err)
	}
	hash := cache.Hash(patternData)

	// Try to get all formats from cache
	if !opts.NoCache {
		artifacts := make(map[string][]byte)
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, hash, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderPattern(ctx, p, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	// Cache each format
	if !opts.NoCache {
		for format, data := range rendered {
			cacheKey := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			r.set(ctx, "artifact", cacheKey, data, cache.TTLArtifact)
		}
	}

	return rendered, hash, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the hash and cache hit info.
func (r *Runner) Render(ctx context.Context, p kolam.Pattern, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) store(ctx context.Context, keyType, key string, p kolam.Pattern, ttl time.Duration) {
	data, err := kolamio.Encode(p)
	if err != nil {
		r.Logger.Debug("encode for cache failed", "key", key, "error", err)
		return
	}
	r.set(ctx, keyType, key, data, ttl)
}

// set writes a cache entry. Failures only cost a future miss.
func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
