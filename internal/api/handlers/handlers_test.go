package handlers

import (
	"context"
	"convoy-route-service/internal/adapters/geometry"
	"convoy-route-service/internal/api/dto"
	"convoy-route-service/internal/domain"
	"convoy-route-service/internal/platform/obs"
	"convoy-route-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testWorld() *domain.World {
	return domain.NewWorld(
		[]domain.SupplyPoint{{
			ID:          "SP001",
			Name:        "Main Depot",
			Coords:      domain.Coordinates{Lat: 50, Lon: 30},
			HasAirstrip: true,
			Status:      "active",
			Inventory:   domain.Supplies{FoodTons: 100, FuelTons: 50},
		}},
		[]domain.Destination{{
			ID:       "D1",
			Name:     "Forward Post",
			Coords:   domain.Coordinates{Lat: 50.5, Lon: 30},
			Priority: domain.PriorityHigh,
			Demand:   domain.Supplies{AmmoTons: 3, MedicalTons: 2},
		}},
		[]domain.Vehicle{{
			ID:          "V1",
			Type:        "TRUCK",
			Mode:        domain.ModeGround,
			CapacityTon: 10,
			MaxRangeKm:  500,
			SpeedKmh:    80,
			HomeBase:    "SP001",
			Status:      "available",
		}},
		[]domain.RoadSegment{
			{FromID: "SP001", ToID: "D1", DistanceKm: 60, ThreatLevel: domain.ThreatLow, RoadCondition: "good"},
			{FromID: "SP001", ToID: "GHOST", DistanceKm: 10, ThreatLevel: domain.ThreatLow},
		},
	)
}

func newOptimizeHandler() *OptimizeHandler {
	return NewOptimizeHandler(services.NewOptimizer(testWorld(), services.OptimizerOptions{}))
}

func TestHealthReportsWorldSize(t *testing.T) {
	h := &HealthHandler{World: testWorld()}
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status != "ok" || res.SupplyPoints != 1 || res.Destinations != 1 || res.Vehicles != 1 || res.RoadSegments != 2 {
		t.Fatalf("res = %+v", res)
	}
}

func TestErrorCarriesRequestID(t *testing.T) {
	h := &HealthHandler{}
	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	req = req.WithContext(obs.WithRequestID(req.Context(), "req-42"))

	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}

	var res dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Error != "method not allowed" || res.RequestID != "req-42" {
		t.Fatalf("res = %+v", res)
	}
}

func TestWorldHandlerRejectsPost(t *testing.T) {
	h := &WorldHandler{World: testWorld()}
	rec := httptest.NewRecorder()
	h.Vehicles(rec, httptest.NewRequest(http.MethodPost, "/api/vehicles", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("Allow = %q", rec.Header().Get("Allow"))
	}
}

func TestWorldHandlerSupplyPoints(t *testing.T) {
	h := &WorldHandler{World: testWorld()}
	rec := httptest.NewRecorder()
	h.SupplyPoints(rec, httptest.NewRequest(http.MethodGet, "/api/supply-points", nil))

	var res []dto.SupplyPointResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res) != 1 || res[0].TotalInventory != 150 || !res[0].HasAirstrip {
		t.Fatalf("res = %+v", res)
	}
}

func TestWorldHandlerRoutesSkipsUnresolvedEndpoints(t *testing.T) {
	h := &WorldHandler{World: testWorld()}
	rec := httptest.NewRecorder()
	h.Routes(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))

	var res []dto.RouteSegmentResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("len = %d, want 1", len(res))
	}
	if res[0].FromCoords[0] != 50 || res[0].ToCoords[0] != 50.5 {
		t.Fatalf("coords = %v -> %v, want [lat, lon]", res[0].FromCoords, res[0].ToCoords)
	}
}

func TestOptimizeDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	newOptimizeHandler().Optimize(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(`{}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.OptimizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !res.Success || len(res.Convoys) != 1 {
		t.Fatalf("res = %+v", res)
	}

	c := res.Convoys[0]
	if c.VehicleID != "V1" || c.SupplyPoint != "SP001" {
		t.Fatalf("convoy = %+v", c)
	}
	if c.TotalDistanceKm != 120 {
		t.Errorf("distance = %v, want 120", c.TotalDistanceKm)
	}
	if c.ETA != "1h 30m" {
		t.Errorf("eta = %q, want 1h 30m", c.ETA)
	}
	if len(c.RouteCoords) != 3 || c.RouteCoords[1][0] != 50.5 {
		t.Errorf("route_coords = %v", c.RouteCoords)
	}
	if res.Summary.DestinationsServed != 1 || res.Summary.TotalDestinations != 1 || res.Summary.TotalCargoTons != 5 {
		t.Errorf("summary = %+v", res.Summary)
	}
	if res.Summary.ThreatExposure["low"] != 1 {
		t.Errorf("threat exposure = %v", res.Summary.ThreatExposure)
	}
}

func TestOptimizeEmptyBodyUsesDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	newOptimizeHandler().Optimize(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestOptimizeUnknownSupplyPointIsEmptyResult(t *testing.T) {
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"supply_point":"SP404"}`)
	newOptimizeHandler().Optimize(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.OptimizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success || res.Convoys == nil || len(res.Convoys) != 0 {
		t.Fatalf("res = %+v, want success with empty convoys", res)
	}
	if !strings.Contains(res.Message, "supply point not found") {
		t.Fatalf("message = %q", res.Message)
	}
	if res.Summary.TotalConvoys != 0 || res.Summary.TotalDestinations != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}
}

func TestOptimizeUnknownVehiclesIsEmptyResult(t *testing.T) {
	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"vehicles":["NOPE"],"avoid_high_threat":false}`)
	newOptimizeHandler().Optimize(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.OptimizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Convoys == nil || len(res.Convoys) != 0 {
		t.Fatalf("convoys = %v, want empty list", res.Convoys)
	}
	if res.Message == "" {
		t.Fatalf("expected a message explaining the empty result")
	}
}

func TestOptimizeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown field": `{"depot":"SP001"}`,
		"two objects":   `{} {}`,
		"empty vehicle": `{"vehicles":[""]}`,
		"not json":      `supply_point=SP001`,
	}

	for name, body := range cases {
		rec := httptest.NewRecorder()
		newOptimizeHandler().Optimize(rec, httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

type stubGeometry struct {
	path []domain.Coordinates
	err  error
}

func (s stubGeometry) RoadGeometry(context.Context, domain.Coordinates, domain.Coordinates) ([]domain.Coordinates, error) {
	return s.path, s.err
}

func TestRoadRouteMissingCoordinates(t *testing.T) {
	h := &RoadRouteHandler{}
	rec := httptest.NewRecorder()
	h.RoadRoute(rec, httptest.NewRequest(http.MethodGet, "/api/road-route?start_lat=50&start_lon=30&end_lat=51", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRoadRouteUsesProvider(t *testing.T) {
	from := domain.Coordinates{Lat: 50, Lon: 30}
	to := domain.Coordinates{Lat: 51, Lon: 31}
	provider := geometry.NewMockGeometryProvider([]geometry.MockRoute{
		{From: from, To: to, Path: []domain.Coordinates{from, {Lat: 50.2, Lon: 30.1}, to}},
	})
	h := &RoadRouteHandler{Provider: provider}
	rec := httptest.NewRecorder()
	h.RoadRoute(rec, httptest.NewRequest(http.MethodGet, "/api/road-route?start_lat=50&start_lon=30&end_lat=51&end_lon=31", nil))

	var res dto.RoadRouteResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Fallback || len(res.Path) != 3 || res.Path[1][0] != 50.2 {
		t.Fatalf("res = %+v", res)
	}
	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
}

func TestRoadRouteFallsBackToStraightLine(t *testing.T) {
	h := &RoadRouteHandler{Provider: stubGeometry{err: errors.New("osrm down")}}
	rec := httptest.NewRecorder()
	h.RoadRoute(rec, httptest.NewRequest(http.MethodGet, "/api/road-route?start_lat=50&start_lon=30&end_lat=51&end_lon=31", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.RoadRouteResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Fallback || len(res.Path) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.Path[0][0] != 50 || res.Path[0][1] != 30 || res.Path[1][0] != 51 || res.Path[1][1] != 31 {
		t.Fatalf("path = %v", res.Path)
	}
}
