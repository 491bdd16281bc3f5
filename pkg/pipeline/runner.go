package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rashika27/frameview/pkg/cache"
	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/frame"
	pkgio "github.com/rashika27/frameview/pkg/io"
	"github.com/rashika27/frameview/pkg/observability"
	"github.com/rashika27/frameview/pkg/render/sink"
	"github.com/rashika27/frameview/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and HTTP viewer use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage cache TTLs when positive.
	TTL time.Duration
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

// Execute runs the complete load → compose → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	f, hash, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Frame = f
	result.FrameHash = hash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Members = f.MemberCount()
	result.Stats.Nodes = f.NodeCount()
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded frame",
		"source", opts.Source,
		"members", f.MemberCount(),
		"nodes", f.NodeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Compose
	composeStart := time.Now()
	s := r.Compose(ctx, f, opts)
	result.Scene = s
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.Primitives = len(s.Primitives)
	result.Stats.Skipped = len(s.Skipped)

	r.Logger.Info("composed scene",
		"primitives", len(s.Primitives),
		"skipped", len(s.Skipped),
		"duration", result.Stats.ComposeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, s, f, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo decodes the input with caching. It returns the frame,
// the content hash of the input bytes and whether the frame came from cache.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*frame.Frame, string, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	data := opts.Data
	if len(data) == 0 {
		var err error
		if data, err = os.ReadFile(opts.Path); err != nil {
			return nil, "", false, errors.Wrap(errors.ErrCodeFileRead, err, "read %s", opts.Path)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Source, len(data))
	start := time.Now()

	hash := cache.Hash(data)
	cacheKey := r.Keyer.FrameKey(hash)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if f, err := pkgio.ReadJSON(bytes.NewReader(cached)); err == nil {
				observability.Cache().OnCacheHit(ctx, "frame")
				hooks.OnLoadComplete(ctx, opts.Source, f.MemberCount(), f.NodeCount(), time.Since(start), nil)
				return f, hash, true, nil
			}
			// If deserialization fails, fall through to decode again
		}
		observability.Cache().OnCacheMiss(ctx, "frame")
	}

	f, err := Decode(opts.Source, data)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Source, 0, 0, time.Since(start), err)
		return nil, "", false, err
	}
	for _, id := range f.Duplicates {
		r.Logger.Warn("duplicate node id ignored", "node", id)
	}

	if encoded, err := pkgio.MarshalJSON(f); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, encoded, r.ttl(cache.TTLFrame)); err == nil {
			observability.Cache().OnCacheSet(ctx, "frame", len(encoded))
		} else {
			r.Logger.Debug("cache write failed", "key", cacheKey, "err", err)
		}
	}

	hooks.OnLoadComplete(ctx, opts.Source, f.MemberCount(), f.NodeCount(), time.Since(start), nil)
	return f, hash, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards
// the hash and cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*frame.Frame, error) {
	f, _, _, err := r.LoadWithCacheInfo(ctx, opts)
	return f, err
}

// Compose builds the scene for f.
func (r *Runner) Compose(ctx context.Context, f *frame.Frame, opts Options) *scene.Scene {
	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, f.MemberCount(), f.NodeCount())
	start := time.Now()

	s := scene.Compose(f, opts.Scene, r.Logger)

	hooks.OnComposeComplete(ctx, len(s.Primitives), len(s.Skipped), time.Since(start))
	return s
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *scene.Scene, f *frame.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid render options")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// The scene JSON pins down every output, so its hash keys the artifacts.
	sceneData, err := sink.RenderJSON(s)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := Render(s, f, opts)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLArtifact)); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, f *frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, f, opts)
	return artifacts, err
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
