package services

import (
	"convoy-route-service/internal/domain"
	"slices"
	"testing"
)

func TestSummarize(t *testing.T) {
	got := Summarize([]domain.ConvoyAssignment{
		{Destinations: []string{"D1", "D2"}, TotalDistanceKm: 100.04, TotalDemandTons: 12.5, ThreatExposure: domain.ThreatLow},
		{Destinations: []string{"D3"}, TotalDistanceKm: 50.03, TotalDemandTons: 4, ThreatExposure: domain.ThreatHigh},
	})

	if got.TotalConvoys != 2 {
		t.Fatalf("convoys = %d, want 2", got.TotalConvoys)
	}
	if got.TotalDistanceKm != 150.1 {
		t.Fatalf("distance = %v, want 150.1", got.TotalDistanceKm)
	}
	if got.TotalDemandTons != 16.5 {
		t.Fatalf("demand = %v, want 16.5", got.TotalDemandTons)
	}
	if got.DestinationsServed != 3 {
		t.Fatalf("served = %d, want 3", got.DestinationsServed)
	}
	if got.AvgDistancePerConvoy != 75 {
		t.Fatalf("avg = %v, want 75", got.AvgDistancePerConvoy)
	}
	if got.ThreatExposure[domain.ThreatLow] != 1 || got.ThreatExposure[domain.ThreatHigh] != 1 || got.ThreatExposure[domain.ThreatMedium] != 0 {
		t.Fatalf("threat exposure = %v", got.ThreatExposure)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.TotalConvoys != 0 || got.TotalDistanceKm != 0 {
		t.Fatalf("summary = %+v, want zero values", got)
	}
}

func TestFormatETA(t *testing.T) {
	cases := map[float64]string{
		0.5:  "30 min",
		0:    "0 min",
		1:    "1h 0m",
		2.75: "2h 45m",
	}
	for hours, want := range cases {
		if got := FormatETA(hours); got != want {
			t.Fatalf("FormatETA(%v) = %q, want %q", hours, got, want)
		}
	}
}

func TestETAHours(t *testing.T) {
	a := domain.ConvoyAssignment{TotalDistanceKm: 160, SpeedKmh: 80}
	if got := ETAHours(a); got != 2 {
		t.Fatalf("eta = %v, want 2", got)
	}
	a.SpeedKmh = 0
	if got := ETAHours(a); got != 0 {
		t.Fatalf("eta = %v, want 0", got)
	}
}

func TestSelectVehicles(t *testing.T) {
	home := truck("V1", 10, 100)
	away := truck("V2", 10, 100)
	away.HomeBase = "SP9"
	w := domain.NewWorld(nil, nil, []domain.Vehicle{home, away}, nil)

	if got := SelectVehicles(w, "SP1", []string{"X"}); !slices.Equal(got, []string{"X"}) {
		t.Fatalf("explicit selection = %v, want [X]", got)
	}
	if got := SelectVehicles(w, "SP1", nil); !slices.Equal(got, []string{"V1"}) {
		t.Fatalf("home base selection = %v, want [V1]", got)
	}
	if got := SelectVehicles(w, "SP5", nil); !slices.Equal(got, []string{"V1", "V2"}) {
		t.Fatalf("fallback selection = %v, want [V1 V2]", got)
	}
}
