// Package cache stores rendered diagram artifacts.
//
// Rendering a diagram is cheap, but PNG and PDF conversion shells out to
// rsvg-convert and the preview server re-renders on every request. Artifacts
// are therefore cached by the content hash of the diagram document plus the
// render options (see [Keyer]).
//
// Three backends are provided:
//
//   - [FileCache] for the CLI, one JSON entry file per key
//   - [RedisCache] for preview servers sharing a cache
//   - [NullCache] when caching is disabled
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiration. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss returns (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Clear removes every entry from c if the backend supports it.
func Clear(ctx context.Context, c Cache) error {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}
