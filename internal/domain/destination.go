package domain

import "strings"

// Priority of a destination's demand.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes a raw value; empty input defaults to medium.
func ParsePriority(s string) Priority {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityMedium
	}
	return Priority(s)
}

// Score maps high=3, medium=2, low=1; unknown values score as medium.
func (p Priority) Score() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	}
	return 2
}

// A demand location waiting for supplies.
type Destination struct {
	ID          string
	Name        string
	Coords      Coordinates
	Region      string
	Country     string
	Priority    Priority
	HasAirstrip bool
	Demand      Supplies
}

// TotalDemandTons is the sum of categorized demand.
func (d Destination) TotalDemandTons() float64 { return d.Demand.Total() }
