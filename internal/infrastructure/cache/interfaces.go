package cache

import (
	"context"
	"time"
)

// Cache holds short-lived serialized responses. A miss is (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
