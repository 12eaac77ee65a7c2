// Package cache stores computed layouts and rendered artifacts.
//
// Layout runs are cheap but rendering (PNG, PDF, browser screenshots) is
// not. The pipeline keys results by content hash of the input data and the
// options that affect the output, so an unchanged catalog renders from
// cache.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: shared cache for the dashboard server
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the key options;
// [ScopedKeyer] adds a prefix so several deployments can share one Redis.
package cache

import (
	"context"
	"time"
)

// Cache time-to-live defaults.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
