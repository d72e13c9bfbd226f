// Package cache provides content-addressed caching for the rendering
// pipeline. Geometry, layouts and rendered artifacts are cached separately
// so a data change only invalidates the artifacts, not the layout.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Geometry rarely changes; artifacts are
// cheap to recompute and expire faster.
const (
	TTLGeometry = 7 * 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 6 * time.Hour
)

// Cache is the backend-agnostic storage interface. Implementations include
// file, redis, and null backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the inputs that affect layout computation beyond the
// geometry itself.
type LayoutKeyOpts struct {
	OffsetsHash string // hash of per-region anchor offsets, empty when none
}

// ArtifactKeyOpts are the inputs that affect artifact rendering beyond the
// layout itself.
type ArtifactKeyOpts struct {
	Format      string
	Style       string
	Mode        string
	Legend      bool
	Interactive bool
	DataHash    string // hash of the dataset painted onto the layout
	OptionsHash string // hash of mode-specific options (bars, callouts, labels)
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// GeometryKey identifies an imported region set by source and content.
	GeometryKey(source, contentHash string) string
	// LayoutKey identifies a computed layout.
	LayoutKey(geometryHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hierarchical keys with hashed option suffixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GeometryKey generates a key for imported geometry.
func (k *DefaultKeyer) GeometryKey(source, contentHash string) string {
	return hashKey("geometry", source, contentHash)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(geometryHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", geometryHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
