package cache

import (
	"convoy-route-service/internal/domain"
	"encoding/json"
	"fmt"
)

// geometryKey identifies an endpoint pair at roughly metre precision.
func geometryKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f;%.5f,%.5f", from.Lat, from.Lon, to.Lat, to.Lon)
}

// Paths are stored as [[lat, lon], ...].
func encodePath(path []domain.Coordinates) ([]byte, error) {
	pairs := make([][]float64, len(path))
	for i, c := range path {
		pairs[i] = c.LatLon()
	}
	return json.Marshal(pairs)
}

func decodePath(b []byte) ([]domain.Coordinates, error) {
	var pairs [][]float64
	if err := json.Unmarshal(b, &pairs); err != nil {
		return nil, err
	}
	out := make([]domain.Coordinates, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: want [lat, lon], got %d values", i, len(p))
		}
		out[i] = domain.Coordinates{Lat: p[0], Lon: p[1]}
	}
	return out, nil
}
