package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/choromap/pkg/cache"
	"github.com/matzehuels/choromap/pkg/errors"
	chio "github.com/matzehuels/choromap/pkg/io"
	"github.com/matzehuels/choromap/pkg/observability"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
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

// Result contains the outputs of a pipeline run.
type Result struct {
	// RenderID correlates log lines and server responses for one run.
	RenderID string

	// Layout contains the computed frame and anchors.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RegionCount int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// Execute runs the complete layout → render pipeline with caching.
// Validation failures are hard errors raised before any stage runs.
func (r *Runner) Execute(ctx context.Context, geo *chio.Geometry, opts Options) (*Result, error) {
	if geo == nil || geo.Set == nil {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "geometry is required")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RenderID:  uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.RegionCount = geo.Set.Len()
	logger := r.Logger.With("render_id", result.RenderID)

	// Stage 1: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, geo, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"regions", len(l.Order),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, geo, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"mode", opts.Mode,
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, geo *chio.Geometry, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, false, err
	}

	geomHash := geometryHash(geo)
	cacheKey := r.Keyer.LayoutKey(geomHash, opts.LayoutKeyOpts(offsetsHash(geo)))

	observability.Pipeline().OnLayoutStart(ctx, geo.Set.Len())
	start := time.Now()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := layout.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), nil)
				return cached, true, nil
			}
			// Undecodable cache entry, fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l := layout.Build(geo.Set, geo.Offsets)

	if data, err := l.Marshal(); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), nil)
	return l, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, geo *chio.Geometry, opts Options) (layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, geo, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, geo *chio.Geometry, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	layoutData, err := l.Marshal()
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)
	dataHash := datasetHash(opts)
	optionsHash := modeOptionsHash(opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Mode, opts.Formats)
	start := time.Now()

	// Try to get all formats from cache.
	artifacts := make(map[string][]byte)
	allCached := !opts.Refresh
	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, dataHash, optionsHash))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		observability.Pipeline().OnRenderComplete(ctx, opts.Mode, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := RenderFromLayout(l, geo, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Mode, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, dataHash, optionsHash))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Mode, opts.Formats, time.Since(start), nil)
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, geo *chio.Geometry, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, geo, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// geometryHash derives the content hash of a region set.
func geometryHash(geo *chio.Geometry) string {
	var buf bytes.Buffer
	_ = chio.WriteJSON(&chio.Geometry{Set: geo.Set}, &buf)
	return cache.Hash(buf.Bytes())
}

// offsetsHash hashes the per-region anchor offsets, empty when none.
func offsetsHash(geo *chio.Geometry) string {
	if len(geo.Offsets) == 0 {
		return ""
	}
	data, _ := json.Marshal(geo.Offsets)
	return cache.Hash(data)
}

// datasetHash hashes the dataset painted onto the layout.
func datasetHash(opts Options) string {
	if len(opts.Data) == 0 {
		return ""
	}
	data, _ := json.Marshal(opts.Data)
	return cache.Hash(data)
}

// modeOptionsHash hashes the mode-specific sections so changed bar or
// callout settings invalidate cached artifacts.
func modeOptionsHash(opts Options) string {
	data, _ := json.Marshal(struct {
		Labels      *LabelConfig       `json:"labels,omitempty"`
		Bars        *BarConfig         `json:"bars,omitempty"`
		Callouts    *CalloutConfig     `json:"callouts,omitempty"`
		Interaction *InteractionConfig `json:"interaction,omitempty"`
		Thresholds  []float64          `json:"thresholds,omitempty"`
		Colors      []string           `json:"colors,omitempty"`
		Background  string             `json:"background,omitempty"`
	}{opts.Labels, opts.Bars, opts.Callouts, opts.Interaction, opts.Thresholds, opts.Colors, opts.Background})
	return cache.Hash(data)
}
