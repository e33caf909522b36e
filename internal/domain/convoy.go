package domain

// ConvoyAssignment is one vehicle's multi-stop route for one optimization run.
//
// Destinations are in the order they were picked by the greedy builder.
// RouteSequence lists every location actually traversed and always starts
// and ends at SupplyPointID. The value owns its slices.
type ConvoyAssignment struct {
	VehicleID       string
	VehicleType     string
	VehicleMode     TransportMode
	SupplyPointID   string
	Destinations    []string
	RouteSequence   []string
	TotalDistanceKm float64
	TotalDemandTons float64
	ThreatExposure  ThreatLevel
	SpeedKmh        float64
}
