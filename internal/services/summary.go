package services

import (
	"convoy-route-service/internal/domain"
	"fmt"
	"math"
)

// Summary aggregates one optimization result for reporting.
type Summary struct {
	TotalConvoys         int
	TotalDistanceKm      float64
	TotalDemandTons      float64
	DestinationsServed   int
	ThreatExposure       map[domain.ThreatLevel]int
	AvgDistancePerConvoy float64
}

// Summarize derives report statistics from assignments.
// Distances are rounded to one decimal; demand is left as-is.
func Summarize(assignments []domain.ConvoyAssignment) Summary {
	s := Summary{
		ThreatExposure: map[domain.ThreatLevel]int{
			domain.ThreatLow:    0,
			domain.ThreatMedium: 0,
			domain.ThreatHigh:   0,
		},
	}
	if len(assignments) == 0 {
		return s
	}

	served := make(map[string]struct{})
	for _, a := range assignments {
		s.TotalDistanceKm += a.TotalDistanceKm
		s.TotalDemandTons += a.TotalDemandTons
		s.ThreatExposure[a.ThreatExposure]++
		for _, d := range a.Destinations {
			served[d] = struct{}{}
		}
	}

	s.TotalConvoys = len(assignments)
	s.DestinationsServed = len(served)
	s.AvgDistancePerConvoy = round1(s.TotalDistanceKm / float64(len(assignments)))
	s.TotalDistanceKm = round1(s.TotalDistanceKm)

	return s
}

// ETAHours is the driving time of a convoy at its vehicle speed.
// A non-positive speed yields zero.
func ETAHours(a domain.ConvoyAssignment) float64 {
	if a.SpeedKmh <= 0 {
		return 0
	}
	return a.TotalDistanceKm / a.SpeedKmh
}

// FormatETA renders hours as "N min" under an hour and "Hh Mm" otherwise.
func FormatETA(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%d min", int(hours*60))
	}
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
