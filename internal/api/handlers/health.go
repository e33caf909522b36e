package handlers

import (
	"convoy-route-service/internal/api/dto"
	"convoy-route-service/internal/domain"
	"net/http"
)

// HealthHandler reports liveness together with the size of the loaded world,
// so an empty data load is visible without calling the optimizer.
type HealthHandler struct {
	World *domain.World
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	res := dto.HealthResponse{Status: "ok"}
	if h.World != nil {
		res.SupplyPoints = len(h.World.SupplyPoints)
		res.Destinations = len(h.World.Destinations)
		res.Vehicles = len(h.World.Vehicles)
		res.RoadSegments = len(h.World.Segments)
	}

	writeJSON(w, r, http.StatusOK, res)
}
