package handlers

import (
	"convoy-route-service/internal/api/dto"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/metrics"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DefaultSupplyPoint = "SP001"

type OptimizeHandler struct {
	Optimizer *services.Optimizer
	validate  *validator.Validate
}

func NewOptimizeHandler(opt *services.Optimizer) *OptimizeHandler {
	return &OptimizeHandler{Optimizer: opt, validate: validator.New()}
}

// Optimize runs the convoy optimizer for one supply point and renders the
// convoys with map coordinates, ETA and a summary.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	// An empty body means all defaults.
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	spID := strings.TrimSpace(req.SupplyPoint)
	if spID == "" {
		spID = DefaultSupplyPoint
	}

	avoid := true
	if req.AvoidHighThreat != nil {
		avoid = *req.AvoidHighThreat
	}

	world := h.Optimizer.World()
	vehicleIDs := services.SelectVehicles(world, spID, req.Vehicles)

	start := time.Now()
	assignments, err := h.Optimizer.Optimize(r.Context(), spID, vehicleIDs, avoid)
	metrics.OptimizeDuration.Observe(time.Since(start).Seconds())
	metrics.OptimizeOutcomes.WithLabelValues(outcome(err)).Inc()

	res := dto.OptimizeResponse{Success: true}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrPointNotFound),
		errors.Is(err, domain.ErrNoAvailableVehicles),
		errors.Is(err, domain.ErrNoReachableDestinations):
		// Nothing to plan is still a successful, empty answer.
		res.Message = err.Error()
	default:
		log.Printf("req_id=%s optimize failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res.Convoys = make([]dto.ConvoyResponse, 0, len(assignments))
	for i, a := range assignments {
		metrics.ConvoysPlanned.WithLabelValues(string(a.VehicleMode)).Inc()

		coords := make([][]float64, 0, len(a.RouteSequence))
		for _, id := range a.RouteSequence {
			if c, ok := world.Coords(id); ok {
				coords = append(coords, c.LatLon())
			}
		}

		res.Convoys = append(res.Convoys, dto.ConvoyResponse{
			ID:              i + 1,
			VehicleID:       a.VehicleID,
			VehicleType:     a.VehicleType,
			Mode:            string(a.VehicleMode),
			SpeedKmh:        a.SpeedKmh,
			SupplyPoint:     a.SupplyPointID,
			Destinations:    a.Destinations,
			RouteSequence:   a.RouteSequence,
			RouteCoords:     coords,
			TotalDistanceKm: a.TotalDistanceKm,
			TotalDemandTons: a.TotalDemandTons,
			ThreatExposure:  string(a.ThreatExposure),
			ETA:             services.FormatETA(services.ETAHours(a)),
		})
	}

	s := services.Summarize(assignments)
	res.Summary = dto.OptimizeSummary{
		TotalConvoys:         s.TotalConvoys,
		TotalDistanceKm:      s.TotalDistanceKm,
		TotalCargoTons:       math.Round(s.TotalDemandTons*10) / 10,
		DestinationsServed:   s.DestinationsServed,
		TotalDestinations:    len(world.Destinations),
		AvgDistancePerConvoy: s.AvgDistancePerConvoy,
		ThreatExposure:       make(map[string]int, len(s.ThreatExposure)),
	}
	for level, n := range s.ThreatExposure {
		res.Summary.ThreatExposure[string(level)] = n
	}

	writeJSON(w, r, http.StatusOK, res)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrPointNotFound):
		return "point_not_found"
	case errors.Is(err, domain.ErrNoAvailableVehicles):
		return "no_vehicles"
	case errors.Is(err, domain.ErrNoReachableDestinations):
		return "no_reachable_destinations"
	}
	return "error"
}
