// Package cache provides the storage layer behind the frameview pipeline.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for
// viewers that share a cache across processes, and [NullCache] when caching
// is disabled. Keys come from a [Keyer] so that callers never assemble key
// strings by hand.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default time-to-live values per cached stage.
const (
	TTLFrame    = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Projection string `json:"projection,omitempty"`
	Title      string `json:"title,omitempty"`
}

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// FrameKey keys a decoded frame by the hash of the raw input bytes.
	FrameKey(contentHash string) string

	// ArtifactKey keys a rendered output by the hash of the scene it was
	// drawn from and the render options.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FrameKey implements Keyer.
func (DefaultKeyer) FrameKey(contentHash string) string {
	return fmt.Sprintf("frame:%s", contentHash)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
