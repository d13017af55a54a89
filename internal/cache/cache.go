// Package cache provides a time-bounded key/value cache for generated
// artifacts. Keys are deterministic fingerprints of an operation name and
// its discriminating parameters; expired entries behave as absent.
package cache

import (
	"context"
	"strings"
	"time"
)

// DefaultTTL is the retention window for cached artifacts.
const DefaultTTL = 24 * time.Hour

// Cache is a shared key/value store with per-entry expiry. Implementations
// must tolerate concurrent reads and writes; last-write-wins per key is
// sufficient.
type Cache interface {
	// Get returns the value for key, or ("", false) when absent or expired.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key. A zero ttl means DefaultTTL.
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// Key builds a deterministic cache key from an operation name and its
// parameters. Identical inputs always produce identical keys.
func Key(op string, parts ...string) string {
	return op + ":" + strings.Join(parts, ":")
}
