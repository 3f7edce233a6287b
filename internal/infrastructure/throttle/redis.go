package throttle

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const keyPrefix = "poll:"

type Redis struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedis(client *redis.Client, log *logger.Logger) *Redis {
	return &Redis{
		client: client,
		log:    log,
	}
}

func (r *Redis) Allow(ctx context.Context, key string, interval time.Duration) (bool, time.Duration, error) {
	ok, err := r.client.SetNX(ctx, keyPrefix+key, 1, interval).Result()
	if err != nil {
		return false, 0, r.log.Wrap(err, "setnx poll key")
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := r.client.PTTL(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, 0, r.log.Wrap(err, "pttl poll key")
	}
	if ttl < 0 {
		// Key vanished between the calls
		ttl = 0
	}
	return false, ttl, nil
}
