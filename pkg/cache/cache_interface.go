package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the response-cache store.
// Allows swapping the implementation (Redis in production, Memory in tests).
type Cache interface {
	// Get reads the entry stored under key and unmarshals it into dest.
	// Returns (false, nil) on a miss; dest is untouched in that case.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern
	// (e.g. "authors_list:*"). A pattern matching nothing is a no-op.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}
