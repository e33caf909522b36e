package dto

type HealthResponse struct {
	Status       string `json:"status"`
	SupplyPoints int    `json:"supply_points"`
	Destinations int    `json:"destinations"`
	Vehicles     int    `json:"vehicles"`
	RoadSegments int    `json:"road_segments"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
