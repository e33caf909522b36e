package domain

import "strings"

// TransportMode restricts where a vehicle can operate.
type TransportMode string

const (
	ModeGround TransportMode = "GROUND"
	ModeAir    TransportMode = "AIR"
	ModeWater  TransportMode = "WATER"
)

// ParseTransportMode normalizes a raw value; empty input defaults to GROUND.
func ParseTransportMode(s string) TransportMode {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ModeGround
	}
	return TransportMode(s)
}

// A fleet vehicle available for assignment.
type Vehicle struct {
	ID          string
	Type        string
	Mode        TransportMode
	CapacityTon float64
	MaxRangeKm  float64
	SpeedKmh    float64
	HomeBase    string
	Status      string
}

// NeedsAirstrip reports whether the vehicle can only use airstrips.
func (v Vehicle) NeedsAirstrip() bool { return v.Mode == ModeAir }
