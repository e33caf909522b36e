package domain

// Represents one road between two locations.
// RoadCondition and EffectiveDistanceKm are carried for display; routing
// only ever looks at DistanceKm and ThreatLevel.
type RoadSegment struct {
	FromID              string
	ToID                string
	DistanceKm          float64
	ThreatLevel         ThreatLevel
	RoadCondition       string
	EffectiveDistanceKm float64
}
