package cache

import (
	"context"
	"time"
)

// Cache is the contract for the key/value layer. Keeping it narrow lets the
// Redis implementation be swapped for an in-memory one in tests.
type Cache interface {
	// Get unmarshals the stored value into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
