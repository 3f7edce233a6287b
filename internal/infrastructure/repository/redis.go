package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

const sessionKeyPrefix = "session:"

type RedisSessionRepo struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisClient connects and pings, so callers can fall back early.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return client, nil
}

func NewRedisSessionRepo(client *redis.Client, log *logger.Logger) *RedisSessionRepo {
	return &RedisSessionRepo{
		client: client,
		log:    log,
	}
}

func (r *RedisSessionRepo) SaveSession(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return r.log.Wrap(err, "marshal session")
	}

	ttl := time.Until(session.ExpiresAt)
	if session.ExpiresAt.IsZero() {
		ttl = 0
	} else if ttl <= 0 {
		return nil
	}

	err = r.client.Set(ctx, sessionKeyPrefix+session.ID, data, ttl).Err()
	if err != nil {
		return r.log.Wrap(err, "save session")
	}
	return nil
}

func (r *RedisSessionRepo) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, r.log.Wrap(err, "get session")
	}

	var session entity.Session
	err = json.Unmarshal(data, &session)
	if err != nil {
		return nil, r.log.Wrap(err, "unmarshal session")
	}
	return &session, nil
}

func (r *RedisSessionRepo) DeleteSession(ctx context.Context, id string) error {
	err := r.client.Del(ctx, sessionKeyPrefix+id).Err()
	if err != nil {
		return r.log.Wrap(err, "delete session")
	}
	return nil
}

func (r *RedisSessionRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Redis persists on its own, nothing to back up.
func (r *RedisSessionRepo) Backup(ctx context.Context) error {
	return nil
}

func (r *RedisSessionRepo) Restore(ctx context.Context) error {
	return nil
}

// Close leaves the shared client open, the app owns it.
func (r *RedisSessionRepo) Close(ctx context.Context) error {
	return nil
}
