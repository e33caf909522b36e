package dto

type OptimizeRequest struct {
	SupplyPoint     string   `json:"supply_point" validate:"omitempty,max=64,printascii"`
	AvoidHighThreat *bool    `json:"avoid_high_threat"`
	Vehicles        []string `json:"vehicles" validate:"omitempty,max=1000,dive,required,max=64,printascii"`
}

type ConvoyResponse struct {
	ID              int         `json:"id"`
	VehicleID       string      `json:"vehicle_id"`
	VehicleType     string      `json:"vehicle_type"`
	Mode            string      `json:"mode"`
	SpeedKmh        float64     `json:"speed_kmh"`
	SupplyPoint     string      `json:"supply_point"`
	Destinations    []string    `json:"destinations"`
	RouteSequence   []string    `json:"route_sequence"`
	RouteCoords     [][]float64 `json:"route_coords"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	TotalDemandTons float64     `json:"total_demand_tons"`
	ThreatExposure  string      `json:"threat_exposure"`
	ETA             string      `json:"eta"`
}

type OptimizeSummary struct {
	TotalConvoys         int            `json:"total_convoys"`
	TotalDistanceKm      float64        `json:"total_distance_km"`
	TotalCargoTons       float64        `json:"total_cargo_tons"`
	DestinationsServed   int            `json:"destinations_served"`
	TotalDestinations    int            `json:"total_destinations"`
	AvgDistancePerConvoy float64        `json:"avg_distance_per_convoy"`
	ThreatExposure       map[string]int `json:"threat_exposure"`
}

type OptimizeResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Convoys []ConvoyResponse `json:"convoys"`
	Summary OptimizeSummary  `json:"summary"`
}

// Path is [[lat, lon], ...].
type RoadRouteResponse struct {
	Path     [][]float64 `json:"path"`
	Fallback bool        `json:"fallback"`
}
