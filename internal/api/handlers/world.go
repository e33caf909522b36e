package handlers

import (
	"convoy-route-service/internal/api/dto"
	"convoy-route-service/internal/domain"
	"net/http"
)

// WorldHandler exposes the loaded input tables read-only.
type WorldHandler struct {
	World *domain.World
}

func (h *WorldHandler) SupplyPoints(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := make([]dto.SupplyPointResponse, 0, len(h.World.SupplyPoints))
	for _, sp := range h.World.SupplyPoints {
		res = append(res, dto.SupplyPointResponse{
			ID:             sp.ID,
			Name:           sp.Name,
			Lat:            sp.Coords.Lat,
			Lon:            sp.Coords.Lon,
			Region:         sp.Region,
			Country:        sp.Country,
			BaseType:       sp.BaseType,
			Troops:         sp.Troops,
			HasAirstrip:    sp.HasAirstrip,
			FoodTons:       sp.Inventory.FoodTons,
			AmmoTons:       sp.Inventory.AmmoTons,
			FuelTons:       sp.Inventory.FuelTons,
			MedicalTons:    sp.Inventory.MedicalTons,
			TotalInventory: sp.Inventory.Total(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *WorldHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := make([]dto.DestinationResponse, 0, len(h.World.Destinations))
	for _, d := range h.World.Destinations {
		res = append(res, dto.DestinationResponse{
			ID:          d.ID,
			Name:        d.Name,
			Lat:         d.Coords.Lat,
			Lon:         d.Coords.Lon,
			Region:      d.Region,
			Country:     d.Country,
			Priority:    string(d.Priority),
			HasAirstrip: d.HasAirstrip,
			FoodTons:    d.Demand.FoodTons,
			AmmoTons:    d.Demand.AmmoTons,
			FuelTons:    d.Demand.FuelTons,
			MedicalTons: d.Demand.MedicalTons,
			TotalDemand: d.TotalDemandTons(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *WorldHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := make([]dto.VehicleResponse, 0, len(h.World.Vehicles))
	for _, v := range h.World.Vehicles {
		res = append(res, dto.VehicleResponse{
			ID:       v.ID,
			Type:     v.Type,
			Mode:     string(v.Mode),
			Capacity: v.CapacityTon,
			MaxRange: v.MaxRangeKm,
			SpeedKmh: v.SpeedKmh,
			HomeBase: v.HomeBase,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Routes lists segments whose endpoints both resolve to coordinates.
func (h *WorldHandler) Routes(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := make([]dto.RouteSegmentResponse, 0, len(h.World.Segments))
	for _, s := range h.World.Segments {
		from, ok := h.World.Coords(s.FromID)
		if !ok {
			continue
		}
		to, ok := h.World.Coords(s.ToID)
		if !ok {
			continue
		}

		res = append(res, dto.RouteSegmentResponse{
			FromID:        s.FromID,
			ToID:          s.ToID,
			FromCoords:    from.LatLon(),
			ToCoords:      to.LatLon(),
			DistanceKm:    s.DistanceKm,
			ThreatLevel:   string(s.ThreatLevel),
			RoadCondition: s.RoadCondition,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
