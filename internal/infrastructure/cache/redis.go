package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const keyPrefix = "cache:"

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

func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, c.log.Wrap(err, "get cached value")
	}
	return data, nil
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
	if err != nil {
		return c.log.Wrap(err, "set cached value")
	}
	return nil
}
