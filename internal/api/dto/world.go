package dto

type SupplyPointResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	BaseType       string  `json:"base_type"`
	Troops         int     `json:"troops"`
	HasAirstrip    bool    `json:"has_airstrip"`
	FoodTons       float64 `json:"food_tons"`
	AmmoTons       float64 `json:"ammo_tons"`
	FuelTons       float64 `json:"fuel_tons"`
	MedicalTons    float64 `json:"medical_tons"`
	TotalInventory float64 `json:"total_inventory"`
}

type DestinationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Priority    string  `json:"priority"`
	HasAirstrip bool    `json:"has_airstrip"`
	FoodTons    float64 `json:"food_tons"`
	AmmoTons    float64 `json:"ammo_tons"`
	FuelTons    float64 `json:"fuel_tons"`
	MedicalTons float64 `json:"medical_tons"`
	TotalDemand float64 `json:"total_demand"`
}

type VehicleResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Mode     string  `json:"mode"`
	Capacity float64 `json:"capacity"`
	MaxRange float64 `json:"max_range"`
	SpeedKmh float64 `json:"speed_kmh"`
	HomeBase string  `json:"home_base"`
}

// Coordinates are [lat, lon].
type RouteSegmentResponse struct {
	FromID        string    `json:"from_id"`
	ToID          string    `json:"to_id"`
	FromCoords    []float64 `json:"from_coords"`
	ToCoords      []float64 `json:"to_coords"`
	DistanceKm    float64   `json:"distance_km"`
	ThreatLevel   string    `json:"threat_level"`
	RoadCondition string    `json:"road_condition"`
}
