package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	GlobalKeyPrefix = "quizengine"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ResourceKey returns the key under which a fetched resource is cached.
// The location is hashed so URLs never leak separators into the key.
func ResourceKey(kind, location string) string {
	sum := sha256.Sum256([]byte(location))
	return GenerateCacheKey("source", kind, hex.EncodeToString(sum[:8]))
}
