package services

import (
	"context"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/geo"
	"convoy-route-service/internal/graph"
	"convoy-route-service/internal/platform/obs"
	"fmt"
	"log"
	"slices"
)

// OptimizerOptions tunes candidate selection.
type OptimizerOptions struct {
	// PriorityTieBreak breaks equal outbound distances by destination
	// priority (high first) before falling back to ascending id.
	// Off by default, in which case priority never influences selection.
	PriorityTieBreak bool
}

// Optimizer assigns vehicles to multi-stop routes from one supply point.
//
// It is built once from an immutable World and may serve concurrent
// Optimize calls: every call works on its own copies of the vehicle and
// destination pools.
type Optimizer struct {
	world *domain.World
	graph *graph.Graph
	paths *graph.PathFinder
	opts  OptimizerOptions
}

func NewOptimizer(world *domain.World, opts OptimizerOptions) *Optimizer {
	g := graph.Build(world.Segments)
	return &Optimizer{
		world: world,
		graph: g,
		paths: graph.NewPathFinder(g, world),
		opts:  opts,
	}
}

// World returns the input bundle the optimizer was built from.
func (o *Optimizer) World() *domain.World { return o.world }

// FindPath exposes the path-finder for a single pair of locations.
func (o *Optimizer) FindPath(from, to string, avoidHighThreat bool) graph.Path {
	return o.paths.FindPath(from, to, avoidHighThreat)
}

// Optimize builds convoy routes from supplyPointID using the listed vehicles.
//
// Vehicles are processed largest capacity first. Each one greedily claims
// destinations from the shared pool, and claimed destinations are removed
// before the next vehicle runs. Vehicles that cannot serve anything are
// dropped from the result.
//
// The result is never nil. ErrPointNotFound, ErrNoAvailableVehicles and
// ErrNoReachableDestinations come back alongside an empty result; callers
// that only need the assignments may ignore them. A cancelled context stops
// the run between vehicles and returns what was built so far.
func (o *Optimizer) Optimize(
	ctx context.Context,
	supplyPointID string,
	vehicleIDs []string,
	avoidHighThreat bool,
) (_ []domain.ConvoyAssignment, err error) {
	defer obs.Time(ctx, "optimizer.Optimize")(&err)

	assignments := []domain.ConvoyAssignment{}

	spCoords, ok := o.world.Coords(supplyPointID)
	if !ok {
		return assignments, fmt.Errorf("optimize %q: %w", supplyPointID, domain.ErrPointNotFound)
	}

	vehicles := o.candidateVehicles(vehicleIDs)
	if len(vehicles) == 0 {
		return assignments, fmt.Errorf("optimize %q: %w", supplyPointID, domain.ErrNoAvailableVehicles)
	}

	maxRange := 0.0
	for _, v := range vehicles {
		maxRange = max(maxRange, v.MaxRangeKm)
	}

	// Coarse prefilter: the round trip as the crow flies must fit the
	// longest-range vehicle. Roads and threat are ignored here.
	reachable := make([]domain.Destination, 0, len(o.world.Destinations))
	for _, d := range o.world.Destinations {
		if geo.Haversine(spCoords, d.Coords)*2 <= maxRange {
			reachable = append(reachable, d)
		}
	}
	if len(reachable) == 0 {
		return assignments, fmt.Errorf("optimize %q: %w", supplyPointID, domain.ErrNoReachableDestinations)
	}

	// Priority order is kept for readability of the pool only; selection
	// is decided by distance and the configured tie-break.
	slices.SortStableFunc(reachable, func(a, b domain.Destination) int {
		return b.Priority.Score() - a.Priority.Score()
	})

	remaining := make([]string, 0, len(reachable))
	for _, d := range reachable {
		remaining = append(remaining, d.ID)
	}

	for _, v := range vehicles {
		if len(remaining) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return assignments, fmt.Errorf("optimize %q: %w", supplyPointID, err)
		}

		a, ok := o.AssignVehicleRoute(v, supplyPointID, remaining, avoidHighThreat)
		if !ok {
			continue
		}

		assignments = append(assignments, a)
		remaining = slices.DeleteFunc(remaining, func(id string) bool {
			return slices.Contains(a.Destinations, id)
		})
	}

	log.Printf(
		"optimize supply_point=%s vehicles=%d candidates=%d convoys=%d unserved=%d",
		supplyPointID, len(vehicles), len(reachable), len(assignments), len(remaining),
	)

	return assignments, nil
}

// candidateVehicles resolves the requested ids against the vehicle table,
// keeping table order, and sorts them by capacity descending.
func (o *Optimizer) candidateVehicles(ids []string) []domain.Vehicle {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]domain.Vehicle, 0, len(ids))
	for _, v := range o.world.Vehicles {
		if _, ok := wanted[v.ID]; ok {
			out = append(out, v)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Vehicle) int {
		switch {
		case a.CapacityTon > b.CapacityTon:
			return -1
		case a.CapacityTon < b.CapacityTon:
			return 1
		}
		return 0
	})

	return out
}
