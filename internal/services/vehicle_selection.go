package services

import "convoy-route-service/internal/domain"

// SelectVehicles returns the ids to optimize with when the caller did not
// pick any: vehicles homed at the supply point, or the whole available
// fleet when none are.
func SelectVehicles(world *domain.World, supplyPointID string, requested []string) []string {
	if len(requested) > 0 {
		return requested
	}

	ids := make([]string, 0)
	for _, v := range world.Vehicles {
		if v.HomeBase == supplyPointID {
			ids = append(ids, v.ID)
		}
	}
	if len(ids) > 0 {
		return ids
	}

	for _, v := range world.Vehicles {
		ids = append(ids, v.ID)
	}
	return ids
}
