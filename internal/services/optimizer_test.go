package services

import (
	"context"
	"convoy-route-service/internal/domain"
	"errors"
	"math"
	"slices"
	"testing"
)

// kmLat converts a north-south distance in km to degrees of latitude.
func kmLat(km float64) float64 { return km / (6371.0 * math.Pi / 180) }

func dest(id string, lat, demand float64) domain.Destination {
	return domain.Destination{
		ID:       id,
		Name:     id,
		Coords:   domain.Coordinates{Lat: lat, Lon: 0},
		Priority: domain.PriorityMedium,
		Demand:   domain.Supplies{FoodTons: demand},
	}
}

func truck(id string, capacity, rangeKm float64) domain.Vehicle {
	return domain.Vehicle{
		ID:          id,
		Type:        "TRUCK",
		Mode:        domain.ModeGround,
		CapacityTon: capacity,
		MaxRangeKm:  rangeKm,
		SpeedKmh:    80,
		HomeBase:    "SP1",
		Status:      "available",
	}
}

func road(from, to string, km float64, threat domain.ThreatLevel) domain.RoadSegment {
	return domain.RoadSegment{FromID: from, ToID: to, DistanceKm: km, ThreatLevel: threat}
}

var sp1 = domain.SupplyPoint{ID: "SP1", Name: "Depot", Status: "active"}

func assertInvariants(t *testing.T, w *domain.World, got []domain.ConvoyAssignment) {
	t.Helper()

	seen := map[string]string{}
	for _, a := range got {
		v, _ := w.Vehicle(a.VehicleID)
		if a.TotalDemandTons > v.CapacityTon {
			t.Fatalf("%s carries %v t, capacity %v", a.VehicleID, a.TotalDemandTons, v.CapacityTon)
		}
		if a.TotalDistanceKm > v.MaxRangeKm+0.05 {
			t.Fatalf("%s drives %v km, range %v", a.VehicleID, a.TotalDistanceKm, v.MaxRangeKm)
		}
		seq := a.RouteSequence
		if len(seq) < 2 || seq[0] != a.SupplyPointID || seq[len(seq)-1] != a.SupplyPointID {
			t.Fatalf("%s route %v does not start and end at %s", a.VehicleID, seq, a.SupplyPointID)
		}
		for _, d := range a.Destinations {
			if other, dup := seen[d]; dup {
				t.Fatalf("destination %s served by %s and %s", d, other, a.VehicleID)
			}
			seen[d] = a.VehicleID
		}
	}
}

func TestOptimizeAvoidsHighThreatDestination(t *testing.T) {
	// D2 sits behind a high-threat road and its straight-line fallback
	// does not fit the vehicle's range.
	w := domain.NewWorld(
		[]domain.SupplyPoint{sp1},
		[]domain.Destination{dest("D1", kmLat(40), 40), dest("D2", -kmLat(150), 20)},
		[]domain.Vehicle{truck("V1", 100, 200)},
		[]domain.RoadSegment{
			road("SP1", "D1", 50, domain.ThreatLow),
			road("SP1", "D2", 30, domain.ThreatHigh),
		},
	)
	o := NewOptimizer(w, OptimizerOptions{})

	a, ok := o.AssignVehicleRoute(w.Vehicles[0], "SP1", []string{"D1", "D2"}, true)
	if !ok {
		t.Fatalf("expected an assignment")
	}
	if !slices.Equal(a.Destinations, []string{"D1"}) {
		t.Fatalf("destinations = %v, want [D1]", a.Destinations)
	}
	if a.TotalDistanceKm != 100 {
		t.Fatalf("distance = %v, want 100", a.TotalDistanceKm)
	}
	if a.TotalDemandTons != 40 {
		t.Fatalf("demand = %v, want 40", a.TotalDemandTons)
	}
	if !slices.Equal(a.RouteSequence, []string{"SP1", "D1", "SP1"}) {
		t.Fatalf("route = %v, want [SP1 D1 SP1]", a.RouteSequence)
	}
	if a.ThreatExposure != domain.ThreatLow {
		t.Fatalf("threat = %q, want low", a.ThreatExposure)
	}

	got, err := o.Optimize(context.Background(), "SP1", []string{"V1"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !slices.Equal(got[0].Destinations, []string{"D1"}) {
		t.Fatalf("optimize = %+v, want one convoy to D1", got)
	}
}

func TestOptimizeLargestVehicleFirst(t *testing.T) {
	w := domain.NewWorld(
		[]domain.SupplyPoint{sp1},
		[]domain.Destination{
			dest("D1", kmLat(10), 30),
			dest("D2", kmLat(20), 15),
			dest("D3", kmLat(30), 10),
		},
		[]domain.Vehicle{truck("SMALL", 20, 500), truck("BIG", 50, 500)},
		[]domain.RoadSegment{
			road("SP1", "D1", 10, domain.ThreatLow),
			road("D1", "D2", 10, domain.ThreatLow),
			road("D2", "D3", 10, domain.ThreatMedium),
		},
	)
	o := NewOptimizer(w, OptimizerOptions{})

	got, err := o.Optimize(context.Background(), "SP1", []string{"SMALL", "BIG"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInvariants(t, w, got)

	if len(got) == 0 || got[0].VehicleID != "BIG" {
		t.Fatalf("first convoy = %+v, want BIG", got)
	}
	if !slices.Equal(got[0].Destinations, []string{"D1", "D2"}) {
		t.Fatalf("BIG destinations = %v, want [D1 D2]", got[0].Destinations)
	}

	total := 0
	for _, a := range got {
		total += len(a.Destinations)
	}
	if total > 3 {
		t.Fatalf("assigned %d destinations, want <= 3", total)
	}

	if len(got) != 2 || !slices.Equal(got[1].Destinations, []string{"D3"}) {
		t.Fatalf("second convoy = %+v, want SMALL serving D3", got)
	}
	// SP1 -> D1 -> D2 -> D3 by road and back the same way.
	if got[1].TotalDistanceKm != 60 {
		t.Fatalf("SMALL distance = %v, want 60", got[1].TotalDistanceKm)
	}
	if !slices.Equal(got[1].RouteSequence, []string{"SP1", "D1", "D2", "D3", "D2", "D1", "SP1"}) {
		t.Fatalf("SMALL route = %v", got[1].RouteSequence)
	}
	if got[1].ThreatExposure != domain.ThreatMedium {
		t.Fatalf("SMALL threat = %q, want medium", got[1].ThreatExposure)
	}
}

func TestOptimizeUnknownSupplyPoint(t *testing.T) {
	w := domain.NewWorld([]domain.SupplyPoint{sp1}, nil, []domain.Vehicle{truck("V1", 10, 100)}, nil)
	o := NewOptimizer(w, OptimizerOptions{})

	got, err := o.Optimize(context.Background(), "NOPE", []string{"V1"}, true)
	if !errors.Is(err, domain.ErrPointNotFound) {
		t.Fatalf("err = %v, want ErrPointNotFound", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("result = %v, want empty non-nil slice", got)
	}
}

func TestOptimizeNoVehicles(t *testing.T) {
	w := domain.NewWorld([]domain.SupplyPoint{sp1}, []domain.Destination{dest("D1", 0.1, 1)}, nil, nil)
	o := NewOptimizer(w, OptimizerOptions{})

	got, err := o.Optimize(context.Background(), "SP1", []string{"GHOST"}, true)
	if !errors.Is(err, domain.ErrNoAvailableVehicles) {
		t.Fatalf("err = %v, want ErrNoAvailableVehicles", err)
	}
	if len(got) != 0 {
		t.Fatalf("result = %v, want empty", got)
	}
}

func TestOptimizeNoReachableDestinations(t *testing.T) {
	w := domain.NewWorld(
		[]domain.SupplyPoint{sp1},
		[]domain.Destination{dest("FAR", kmLat(300), 1)},
		[]domain.Vehicle{truck("V1", 10, 500)},
		nil,
	)
	o := NewOptimizer(w, OptimizerOptions{})

	got, err := o.Optimize(context.Background(), "SP1", []string{"V1"}, true)
	if !errors.Is(err, domain.ErrNoReachableDestinations) {
		t.Fatalf("err = %v, want ErrNoReachableDestinations", err)
	}
	if len(got) != 0 {
		t.Fatalf("result = %v, want empty", got)
	}
}

func TestOptimizeCancelledContext(t *testing.T) {
	w := domain.NewWorld(
		[]domain.SupplyPoint{sp1},
		[]domain.Destination{dest("D1", kmLat(10), 1)},
		[]domain.Vehicle{truck("V1", 10, 500)},
		nil,
	)
	o := NewOptimizer(w, OptimizerOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := o.Optimize(ctx, "SP1", []string{"V1"}, true)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(got) != 0 {
		t.Fatalf("result = %v, want empty", got)
	}
}

func TestOptimizeDropsVehiclesThatServeNothing(t *testing.T) {
	w := domain.NewWorld(
		[]domain.SupplyPoint{sp1},
		[]domain.Destination{dest("D1", kmLat(10), 8)},
		[]domain.Vehicle{truck("BIG", 10, 100), truck("TINY", 1, 100)},
		nil,
	)
	o := NewOptimizer(w, OptimizerOptions{})

	got, err := o.Optimize(context.Background(), "SP1", []string{"BIG", "TINY"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].VehicleID != "BIG" {
		t.Fatalf("result = %+v, want only BIG", got)
	}
}
