package domain

import "strings"

// ThreatLevel is the qualitative risk of a road segment.
// It drives avoidance and reporting only and is never used as a path cost.
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// ParseThreatLevel normalizes a raw value; empty input defaults to medium.
// Unknown values are kept as-is (lower-cased) and rank below low.
func ParseThreatLevel(s string) ThreatLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ThreatMedium
	}
	return ThreatLevel(s)
}

// Rank returns the severity rank low=1, medium=2, high=3 (0 if unknown).
func (t ThreatLevel) Rank() int {
	switch t {
	case ThreatLow:
		return 1
	case ThreatMedium:
		return 2
	case ThreatHigh:
		return 3
	}
	return 0
}

// Worse returns the more severe of t and o, preferring t on ties.
func (t ThreatLevel) Worse(o ThreatLevel) ThreatLevel {
	if o.Rank() > t.Rank() {
		return o
	}
	return t
}

// Multiplier is the reporting-only cost factor used for effective distance.
func (t ThreatLevel) Multiplier() float64 {
	switch t {
	case ThreatLow:
		return 1.0
	case ThreatHigh:
		return 2.5
	}
	return 1.5
}
