package repositories

import (
	"convoy-route-service/internal/config"
	"convoy-route-service/internal/domain"
	"log"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const unknown = "UNKNOWN"

// Cleaner turns raw rows into domain values, applying defaults and
// filtering to rows the engine is allowed to see.
type Cleaner struct {
	Fleet config.FleetConfig
}

func NewCleaner(fleet config.FleetConfig) *Cleaner {
	return &Cleaner{Fleet: fleet}
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

func yes(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == "yes"
}

// SupplyPoints keeps active points only. Rows without coordinates are dropped.
func (c *Cleaner) SupplyPoints(rows []supplyPointRow) []domain.SupplyPoint {
	out := make([]domain.SupplyPoint, 0, len(rows))
	for _, r := range rows {
		id := strings.ToUpper(strings.TrimSpace(r.ID))
		status := strings.ToLower(strings.TrimSpace(r.Status))
		if status != "active" {
			continue
		}
		if r.Lat == nil || r.Lon == nil {
			log.Printf("ingest: skip supply point id=%s reason=missing coordinates", id)
			continue
		}

		out = append(out, domain.SupplyPoint{
			ID:          id,
			Name:        orDefault(r.Name, id),
			Coords:      domain.Coordinates{Lat: *r.Lat, Lon: *r.Lon},
			Region:      orDefault(r.Region, unknown),
			Country:     orDefault(r.Country, unknown),
			BaseType:    orDefault(r.BaseType, unknown),
			Troops:      int(orZero(r.Troops)),
			HasAirstrip: yes(r.HasAirstrip),
			Status:      status,
			Inventory: domain.Supplies{
				FoodTons:    orZero(r.FoodTons),
				AmmoTons:    orZero(r.AmmoTons),
				FuelTons:    orZero(r.FuelTons),
				MedicalTons: orZero(r.MedicalTons),
			},
		})
	}
	return out
}

// Destinations normalizes priority and names. Rows without coordinates are dropped.
func (c *Cleaner) Destinations(rows []destinationRow) []domain.Destination {
	title := cases.Title(language.Und)

	out := make([]domain.Destination, 0, len(rows))
	for _, r := range rows {
		id := strings.TrimSpace(r.ID)
		if r.Lat == nil || r.Lon == nil {
			log.Printf("ingest: skip destination id=%s reason=missing coordinates", id)
			continue
		}

		out = append(out, domain.Destination{
			ID:          id,
			Name:        title.String(strings.TrimSpace(r.Name)),
			Coords:      domain.Coordinates{Lat: *r.Lat, Lon: *r.Lon},
			Region:      orDefault(r.Region, unknown),
			Country:     orDefault(r.Country, unknown),
			Priority:    domain.ParsePriority(r.Priority),
			HasAirstrip: yes(r.HasAirstrip),
			Demand: domain.Supplies{
				FoodTons:    orZero(r.FoodTons),
				AmmoTons:    orZero(r.AmmoTons),
				FuelTons:    orZero(r.FuelTons),
				MedicalTons: orZero(r.MedicalTons),
			},
		})
	}
	return out
}

// Vehicles keeps available vehicles and fills speed and range from the
// mode defaults when missing.
func (c *Cleaner) Vehicles(rows []vehicleRow) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(rows))
	for _, r := range rows {
		status := strings.ToLower(strings.TrimSpace(r.Status))
		if status != "available" {
			continue
		}

		mode := domain.ParseTransportMode(r.Mode)
		defaults, known := c.Fleet.Modes[string(mode)]

		v := domain.Vehicle{
			ID:          strings.TrimSpace(r.ID),
			Type:        strings.ToUpper(strings.TrimSpace(r.Type)),
			Mode:        mode,
			CapacityTon: orZero(r.CapacityTons),
			HomeBase:    strings.TrimSpace(r.HomeBase),
			Status:      status,
		}

		switch {
		case r.SpeedKmh != nil:
			v.SpeedKmh = *r.SpeedKmh
		case known:
			v.SpeedKmh = defaults.SpeedKmh
		default:
			v.SpeedKmh = c.Fleet.Modes[string(domain.ModeGround)].SpeedKmh
		}

		switch {
		case r.MaxRangeKm != nil:
			v.MaxRangeKm = *r.MaxRangeKm
		case known:
			v.MaxRangeKm = defaults.MaxRangeKm
		}

		out = append(out, v)
	}
	return out
}

// RoadSegments normalizes threat and condition and derives the
// reporting-only effective distance.
func (c *Cleaner) RoadSegments(rows []roadSegmentRow) []domain.RoadSegment {
	out := make([]domain.RoadSegment, 0, len(rows))
	for _, r := range rows {
		if r.DistanceKm == nil || *r.DistanceKm < 0 {
			log.Printf("ingest: skip road segment from=%s to=%s reason=invalid distance", r.FromID, r.ToID)
			continue
		}

		threat := domain.ParseThreatLevel(r.ThreatLevel)
		out = append(out, domain.RoadSegment{
			FromID:              strings.TrimSpace(r.FromID),
			ToID:                strings.TrimSpace(r.ToID),
			DistanceKm:          *r.DistanceKm,
			ThreatLevel:         threat,
			RoadCondition:       strings.ToLower(orDefault(r.RoadCondition, "unknown")),
			EffectiveDistanceKm: *r.DistanceKm * threat.Multiplier(),
		})
	}
	return out
}
