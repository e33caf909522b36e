package ports

import (
	"context"
	"convoy-route-service/internal/domain"
	"errors"
)

// ErrCacheMiss is returned by GeometryCache.Get when nothing is stored.
var ErrCacheMiss = errors.New("geometry cache miss")

// Persistent cache for road geometry keyed by endpoint pair.
type GeometryCache interface {
	Get(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error)
	Put(ctx context.Context, from, to domain.Coordinates, path []domain.Coordinates) error
}
