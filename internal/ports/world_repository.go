package ports

import (
	"context"
	"convoy-route-service/internal/domain"
)

// Port: a boundary for loading the cleaned input tables.
type WorldRepository interface {
	// Load supply points, destinations, vehicles and road segments,
	// already filtered to active/available rows with defaults applied.
	LoadWorld(ctx context.Context) (*domain.World, error)
}
