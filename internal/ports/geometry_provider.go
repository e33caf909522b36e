package ports

import (
	"context"
	"convoy-route-service/internal/domain"
)

// Contract for retrieving drawable road geometry between two points.
// Results are for display only and never feed the optimizer.
type GeometryProvider interface {
	// Return the road polyline from -> to, endpoints included.
	RoadGeometry(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error)
}
