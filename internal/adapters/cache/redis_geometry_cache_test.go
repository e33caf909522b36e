package cache

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/ports"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisGeometryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisGeometryCache(rdb, ttl), mr
}

func TestRedisGeometryCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 50.45, Lon: 30.52}
	to := domain.Coordinates{Lat: 49.84, Lon: 24.03}

	if _, err := c.Get(ctx, from, to); !errors.Is(err, ports.ErrCacheMiss) {
		t.Fatalf("Get before Put err = %v, want ErrCacheMiss", err)
	}

	path := []domain.Coordinates{from, {Lat: 50.0, Lon: 27.0}, to}
	if err := c.Put(ctx, from, to, path); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := c.Get(ctx, from, to)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 3 || got[1] != path[1] {
		t.Fatalf("Get = %v, want %v", got, path)
	}

	// direction matters
	if _, err := c.Get(ctx, to, from); !errors.Is(err, ports.ErrCacheMiss) {
		t.Fatalf("reverse Get err = %v, want ErrCacheMiss", err)
	}
}

func TestRedisGeometryCacheExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 1, Lon: 2}
	to := domain.Coordinates{Lat: 3, Lon: 4}
	if err := c.Put(ctx, from, to, []domain.Coordinates{from, to}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := c.Get(ctx, from, to); !errors.Is(err, ports.ErrCacheMiss) {
		t.Fatalf("Get after TTL err = %v, want ErrCacheMiss", err)
	}
}

func TestRedisGeometryCacheSkipsEmptyPath(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)

	if err := c.Put(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1}, nil); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("keys = %v, want none", keys)
	}
}

func TestRedisGeometryCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)

	from := domain.Coordinates{Lat: 1, Lon: 2}
	to := domain.Coordinates{Lat: 3, Lon: 4}
	if err := mr.Set(redisKeyPrefix+geometryKey(from, to), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := c.Get(context.Background(), from, to)
	if err == nil || errors.Is(err, ports.ErrCacheMiss) {
		t.Fatalf("err = %v, want decode error", err)
	}
}
