package services

import (
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/geo"
	"math"
	"slices"
)

type candidate struct {
	dest     domain.Destination
	outbound float64
	path     []string
	threat   domain.ThreatLevel
}

// AssignVehicleRoute builds one multi-stop route for vehicle using a greedy
// nearest-neighbor walk over candidateIDs.
//
// At each step the nearest destination (by path-finder distance from the
// current stop) that still fits the vehicle's remaining capacity and leaves
// enough range to get back to the supply point is taken. Ties go to the
// lower destination id. The walk ends when nothing fits, then a return leg
// closes the route.
//
// AIR vehicles need an airstrip at the supply point and only visit
// destinations with one. The bool is false when no destination was served.
func (o *Optimizer) AssignVehicleRoute(
	vehicle domain.Vehicle,
	supplyPointID string,
	candidateIDs []string,
	avoidHighThreat bool,
) (domain.ConvoyAssignment, bool) {
	if vehicle.NeedsAirstrip() {
		if sp, ok := o.world.SupplyPoint(supplyPointID); ok && !sp.HasAirstrip {
			return domain.ConvoyAssignment{}, false
		}
	}

	route := []string{supplyPointID}
	assigned := []string{}
	totalDistance := 0.0
	totalDemand := 0.0
	worst := domain.ThreatLow
	current := supplyPointID

	remaining := slices.Clone(candidateIDs)
	slices.Sort(remaining)

	for len(remaining) > 0 {
		var best *candidate

		for _, id := range remaining {
			d, ok := o.world.Destination(id)
			if !ok {
				continue
			}
			if vehicle.NeedsAirstrip() && !d.HasAirstrip {
				continue
			}

			demand := d.TotalDemandTons()
			if totalDemand+demand > vehicle.CapacityTon {
				continue
			}

			out := o.paths.FindPath(current, id, avoidHighThreat)
			if !out.Reachable() {
				continue
			}

			back := o.paths.FindPath(id, supplyPointID, avoidHighThreat)
			if !back.Reachable() {
				continue
			}

			if totalDistance+out.DistanceKm+back.DistanceKm > vehicle.MaxRangeKm {
				continue
			}

			if best == nil || o.closer(out.DistanceKm, d, best) {
				best = &candidate{dest: d, outbound: out.DistanceKm, path: out.Nodes, threat: out.Threat}
			}
		}

		if best == nil {
			break
		}

		assigned = append(assigned, best.dest.ID)
		route = append(route, best.path[1:]...)
		totalDistance += best.outbound
		totalDemand += best.dest.TotalDemandTons()
		worst = worst.Worse(best.threat)

		remaining = slices.DeleteFunc(remaining, func(id string) bool { return id == best.dest.ID })
		current = best.dest.ID
	}

	if len(assigned) == 0 {
		return domain.ConvoyAssignment{}, false
	}

	back := o.paths.FindPath(current, supplyPointID, avoidHighThreat)
	if len(back.Nodes) > 0 {
		route = append(route, back.Nodes[1:]...)
	} else {
		route = append(route, supplyPointID)
	}

	backKm := back.DistanceKm
	if !back.Reachable() {
		// Close the loop even without a known road back.
		backKm = 0
		a, okA := o.world.Coords(current)
		b, okB := o.world.Coords(supplyPointID)
		if okA && okB {
			backKm = geo.Haversine(a, b)
		}
	} else {
		worst = worst.Worse(back.Threat)
	}
	totalDistance += backKm

	return domain.ConvoyAssignment{
		VehicleID:       vehicle.ID,
		VehicleType:     vehicle.Type,
		VehicleMode:     vehicle.Mode,
		SupplyPointID:   supplyPointID,
		Destinations:    assigned,
		RouteSequence:   route,
		TotalDistanceKm: math.Round(totalDistance*10) / 10,
		TotalDemandTons: totalDemand,
		ThreatExposure:  worst,
		SpeedKmh:        vehicle.SpeedKmh,
	}, true
}

// closer reports whether a destination at dist beats the current best.
// Candidates are scanned in ascending id order, so keeping the incumbent
// on equal distance yields the lower id.
func (o *Optimizer) closer(dist float64, d domain.Destination, best *candidate) bool {
	if dist != best.outbound {
		return dist < best.outbound
	}
	if o.opts.PriorityTieBreak {
		return d.Priority.Score() > best.dest.Priority.Score()
	}
	return false
}
