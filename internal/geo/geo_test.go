package geo

import (
	"math"
	"testing"
)

func TestHaversineZero(t *testing.T) {
	if d := Haversine(33.7490, -84.3880, 33.7490, -84.3880); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := Haversine(33.9427, -84.4407, 33.7729, -84.3627)
	b := Haversine(33.7729, -84.3627, 33.9427, -84.4407)
	if a != b {
		t.Fatalf("distance not symmetric: %f vs %f", a, b)
	}
	if a <= 0 {
		t.Fatalf("expected positive distance, got %f", a)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Marietta-ish point to east Atlanta, roughly 20 km.
	d := Haversine(33.9427, -84.4407, 33.7729, -84.3627)
	if d < 19 || d > 21 {
		t.Fatalf("expected ~20km, got %f", d)
	}
}

func TestHaversineNaNPropagates(t *testing.T) {
	if d := Haversine(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Fatalf("expected NaN, got %f", d)
	}
}

func TestDebugZipCoordinate(t *testing.T) {
	lat, lon, ok := DebugZipCoordinate("30308")
	if !ok {
		t.Fatal("expected 30308 to be a known debug zip")
	}
	if lat < 33 || lat > 34 || lon < -85 || lon > -84 {
		t.Fatalf("30308 outside Atlanta bounding box: %f, %f", lat, lon)
	}
	if _, _, ok := DebugZipCoordinate("90210"); ok {
		t.Fatal("unexpected debug coordinate for unknown zip")
	}
}
