package cache

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLGeometryCache is a SQL-backed cache for road geometry between two
// points. Entries older than TTL are treated as misses.
type SQLGeometryCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeometryCache(db *sql.DB, ttl time.Duration) *SQLGeometryCache {
	return &SQLGeometryCache{DB: db, TTL: ttl}
}

// Fetch the cached polyline for one endpoint pair.
func (s *SQLGeometryCache) Get(
	ctx context.Context,
	from, to domain.Coordinates,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "geometry.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("geometry cache: db is nil")
	}

	q := `
	SELECT path_json, created_at
	FROM geometry_cache
	WHERE cache_key = $1;
	`

	var raw string
	var createdAt time.Time
	err = s.DB.QueryRowContext(ctx, q, geometryKey(from, to)).Scan(&raw, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get geometry cache: query geometry_cache table: %w", err)
	}

	if s.TTL > 0 && time.Since(createdAt) > s.TTL {
		return nil, ports.ErrCacheMiss
	}

	path, err := decodePath([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("get geometry cache: decode path: %w", err)
	}

	return path, nil
}

// Store the polyline for one endpoint pair, replacing any previous entry.
func (s *SQLGeometryCache) Put(
	ctx context.Context,
	from, to domain.Coordinates,
	path []domain.Coordinates,
) error {
	if s.DB == nil {
		return errors.New("geometry cache: db is nil")
	}

	if len(path) == 0 {
		return nil
	}

	b, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("insert geometry cache: encode path: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO geometry_cache (cache_key, path_json, created_at)
	VALUES ($1, $2, now())
	ON CONFLICT (cache_key) DO UPDATE
	SET path_json = EXCLUDED.path_json,
		created_at = EXCLUDED.created_at;
	`, geometryKey(from, to), string(b))
	if err != nil {
		return fmt.Errorf("insert geometry cache key=%q: %w", geometryKey(from, to), err)
	}

	return nil
}
