// Package cache stores analysis results and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default).
//   - [RedisCache]: a shared Redis instance (multi-process or CI use).
//   - [NullCache]: stores nothing (--no-cache).
//
// All backends implement [Cache]. Values are opaque bytes; callers decide the
// encoding.
//
// # Keys
//
// A [Keyer] derives keys from a content hash of the inputs plus the analysis
// parameters, so identical inputs hit the same entry regardless of file name.
// [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// TTLAnalysis applies to path, tree and classification results.
	TTLAnalysis = 7 * 24 * time.Hour
	// TTLArtifact applies to rendered DOT/SVG/PDF/PNG output.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiration.
//
// Get reports a miss as (nil, false, nil); an error means the backend failed.
// A ttl of 0 stores without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
