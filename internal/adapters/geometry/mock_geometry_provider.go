package geometry

import (
	"context"
	"convoy-route-service/internal/domain"
	"fmt"
)

type MockRoute struct {
	From, To domain.Coordinates
	Path     []domain.Coordinates
}

// MockGeometryProvider serves fixed polylines; unknown pairs are errors.
type MockGeometryProvider struct {
	m     map[[2]domain.Coordinates][]domain.Coordinates
	Calls int
}

func NewMockGeometryProvider(routes []MockRoute) *MockGeometryProvider {
	m := make(map[[2]domain.Coordinates][]domain.Coordinates, len(routes))
	for _, r := range routes {
		m[[2]domain.Coordinates{r.From, r.To}] = r.Path
	}
	return &MockGeometryProvider{m: m}
}

func (p *MockGeometryProvider) RoadGeometry(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error) {
	p.Calls++
	path, ok := p.m[[2]domain.Coordinates{from, to}]
	if !ok {
		return nil, fmt.Errorf("missing route %v -> %v", from, to)
	}
	return path, nil
}
