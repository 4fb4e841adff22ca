package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// One degree of longitude at the equator is ~111.19 km
	d := HaversineKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.05 {
		t.Errorf("HaversineKm(0,0 -> 0,1) = %v, want ~111.19", d)
	}
}

func TestHaversineKmSamePoint(t *testing.T) {
	if d := HaversineKm(45.5, -122.6, 45.5, -122.6); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := HaversineKm(-6.2, 106.816, -6.9175, 107.6191)
	b := HaversineKm(-6.9175, 107.6191, -6.2, 106.816)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("haversine not symmetric: %v vs %v", a, b)
	}
	// Jakarta to Bandung is roughly 115-120 km
	if a < 100 || a > 140 {
		t.Errorf("unexpected distance: %v", a)
	}
}

func TestToRad(t *testing.T) {
	if r := ToRad(180); math.Abs(r-math.Pi) > 1e-12 {
		t.Errorf("ToRad(180) = %v, want pi", r)
	}
}
