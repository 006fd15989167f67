package settingscache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

const hashKey = "shop:settings"

// redisCommands is the subset of redis.Client used by the cache. Tests swap
// it for a stub.
type redisCommands interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache is a read-through settings decorator. A redis outage degrades to
// direct database reads.
type Cache struct {
	inner  repository.SettingsRepository
	client redisCommands
	ttl    time.Duration
	logger *slog.Logger
}

func New(inner repository.SettingsRepository, client redisCommands, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.HGet(ctx, hashKey, key).Result()
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("settings cache read failed", "key", key, "error", err)
	}

	value, err = c.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if err := c.client.HSet(ctx, hashKey, key, value).Err(); err != nil {
		c.logger.Warn("settings cache write failed", "key", key, "error", err)
	} else if err := c.client.Expire(ctx, hashKey, c.ttl).Err(); err != nil {
		c.logger.Warn("settings cache expire failed", "error", err)
	}
	return value, nil
}

func (c *Cache) Snapshot(ctx context.Context) (model.Settings, error) {
	cached, err := c.client.HGetAll(ctx, hashKey).Result()
	if err == nil && len(cached) > 0 {
		return model.Settings(cached), nil
	}
	if err != nil {
		c.logger.Warn("settings cache read failed", "error", err)
	}

	settings, err := c.inner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if len(settings) > 0 {
		values := make([]any, 0, len(settings)*2)
		for key, value := range settings {
			values = append(values, key, value)
		}
		if err := c.client.HSet(ctx, hashKey, values...).Err(); err != nil {
			c.logger.Warn("settings cache write failed", "error", err)
		} else if err := c.client.Expire(ctx, hashKey, c.ttl).Err(); err != nil {
			c.logger.Warn("settings cache expire failed", "error", err)
		}
	}
	return settings, nil
}

// Invalidate drops the cached hash so the next read hits the database.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, hashKey).Err()
}
