package cache

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/ports"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geometry:"

// RedisGeometryCache stores road geometry in Redis with a per-entry TTL.
type RedisGeometryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeometryCache(rdb *redis.Client, ttl time.Duration) *RedisGeometryCache {
	return &RedisGeometryCache{rdb: rdb, ttl: ttl}
}

// NewRedisGeometryCacheFromURL parses a redis:// URL and connects lazily.
func NewRedisGeometryCacheFromURL(url string, ttl time.Duration) (*RedisGeometryCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis geometry cache: parse url: %w", err)
	}
	return NewRedisGeometryCache(redis.NewClient(opt), ttl), nil
}

func (c *RedisGeometryCache) Get(
	ctx context.Context,
	from, to domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "geometry.cache.redis.Get")(&err)

	b, err := c.rdb.Get(ctx, redisKeyPrefix+geometryKey(from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get geometry cache: %w", err)
	}

	path, err := decodePath(b)
	if err != nil {
		return nil, fmt.Errorf("get geometry cache: decode path: %w", err)
	}
	return path, nil
}

func (c *RedisGeometryCache) Put(
	ctx context.Context,
	from, to domain.Coordinates,
	path []domain.Coordinates,
) error {
	if len(path) == 0 {
		return nil
	}

	b, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("put geometry cache: encode path: %w", err)
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+geometryKey(from, to), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("put geometry cache: %w", err)
	}
	return nil
}

func (c *RedisGeometryCache) Close() error { return c.rdb.Close() }
