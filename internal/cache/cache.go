// Package cache provides byte-oriented key/value stores with expiry.
package cache

import (
	"context"
	"time"
)

// Store is implemented by the in-memory and redis backends.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
