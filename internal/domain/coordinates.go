package domain

// Immutable geographic coordinates (longitude, latitude) in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// CoordsToList returns [lon, lat], the order OSRM and GeoJSON use.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as [lat, lon] for map rendering.
func (c Coordinates) LatLon() []float64 { return []float64{c.Lat, c.Lon} }
