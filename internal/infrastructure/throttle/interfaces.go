package throttle

import (
	"context"
	"time"
)

// Limiter admits one hit per key per interval.
type Limiter interface {
	Allow(ctx context.Context, key string, interval time.Duration) (allowed bool, retryAfter time.Duration, err error)
}
