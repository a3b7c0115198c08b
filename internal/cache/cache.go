// Package cache stores fetched page payloads so repeated runs do not
// re-query the source wiki. A layered memory+disk cache is the default.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey generates a cache key from a page title. Titles are normalized
// (trimmed, spaces as underscores) before hashing so the same page caches
// under one key regardless of spacing.
func PageKey(title string) string {
	t := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	hash := sha256.Sum256([]byte(t))
	return "wikigraph:v1:" + hex.EncodeToString(hash[:])
}
