package handlers

import (
	"convoy-route-service/internal/api/dto"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/metrics"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/ports"
	"log"
	"net/http"
	"strconv"
)

// RoadRouteHandler returns drawable road geometry between two points.
// Any provider failure degrades to the straight line between them.
type RoadRouteHandler struct {
	Provider ports.GeometryProvider
}

func (h *RoadRouteHandler) RoadRoute(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	var vals [4]float64
	for i, key := range []string{"start_lat", "start_lon", "end_lat", "end_lon"} {
		v, err := strconv.ParseFloat(q.Get(key), 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Missing coordinates")
			return
		}
		vals[i] = v
	}

	from := domain.Coordinates{Lat: vals[0], Lon: vals[1]}
	to := domain.Coordinates{Lat: vals[2], Lon: vals[3]}

	if h.Provider != nil {
		path, err := h.Provider.RoadGeometry(r.Context(), from, to)
		if err == nil && len(path) > 0 {
			res := dto.RoadRouteResponse{Path: make([][]float64, 0, len(path))}
			for _, c := range path {
				res.Path = append(res.Path, c.LatLon())
			}
			writeJSON(w, r, http.StatusOK, res)
			return
		}
		log.Printf("req_id=%s road route fallback: %v", obs.RequestID(r.Context()), err)
	}

	metrics.GeometryFallbacks.Inc()
	writeJSON(w, r, http.StatusOK, dto.RoadRouteResponse{
		Path:     [][]float64{from.LatLon(), to.LatLon()},
		Fallback: true,
	})
}
