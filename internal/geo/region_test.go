package geo

import (
	"math"
	"testing"
	"time"

	"locker-rental/internal/data/entity"
)

func bizAt(id string, lat, lon float64) entity.Business {
	return entity.Business{
		Base: entity.Base{ID: id},
		Location: entity.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
	}
}

func locAt(lat, lon float64) *entity.Location {
	return &entity.Location{Latitude: lat, Longitude: lon, Timestamp: time.Now()}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFrameRegionUserAndBusiness(t *testing.T) {
	loc := locAt(33.9427, -84.4407)
	businesses := []entity.Business{
		bizAt("b1", 33.7729, -84.3627),
		bizAt("b2", 33.5000, -84.2000),
	}

	r := FrameRegion(loc, businesses)

	if !almostEqual(r.CenterLat, 33.8578, 0.0001) || !almostEqual(r.CenterLon, -84.4017, 0.0001) {
		t.Fatalf("unexpected center: %f, %f", r.CenterLat, r.CenterLon)
	}
	if !almostEqual(r.LatDelta, 0.4245, 0.0001) {
		t.Fatalf("unexpected lat delta: %f", r.LatDelta)
	}
	if !almostEqual(r.LonDelta, 0.195, 0.0001) {
		t.Fatalf("unexpected lon delta: %f", r.LonDelta)
	}
	if r.LatDelta < minDelta {
		t.Fatalf("lat delta below floor: %f", r.LatDelta)
	}
	if r.CenterLat == DefaultRegion.CenterLat && r.CenterLon == DefaultRegion.CenterLon {
		t.Fatal("region fell back to default center with both inputs present")
	}
}

func TestFrameRegionCoincidentPoints(t *testing.T) {
	loc := locAt(33.7718, -84.3825)
	businesses := []entity.Business{bizAt("b1", 33.7718, -84.3825)}

	r := FrameRegion(loc, businesses)

	if r.LatDelta != minDelta || r.LonDelta != minDelta {
		t.Fatalf("expected both deltas floored at %f, got %f / %f", minDelta, r.LatDelta, r.LonDelta)
	}
	if r.CenterLat != loc.Latitude || r.CenterLon != loc.Longitude {
		t.Fatalf("midpoint of coincident points should equal the point, got %f, %f", r.CenterLat, r.CenterLon)
	}
}

func TestFrameRegionLocationOnly(t *testing.T) {
	loc := locAt(33.9427, -84.4407)

	r := FrameRegion(loc, nil)

	if r.CenterLat != loc.Latitude || r.CenterLon != loc.Longitude {
		t.Fatalf("expected center on user, got %f, %f", r.CenterLat, r.CenterLon)
	}
	if r.LatDelta != metroLatDelta || r.LonDelta != metroLonDelta {
		t.Fatalf("expected metro deltas, got %f / %f", r.LatDelta, r.LonDelta)
	}
}

func TestFrameRegionBusinessesOnly(t *testing.T) {
	businesses := []entity.Business{
		bizAt("b1", 33.7729, -84.3627),
		bizAt("b2", 33.5000, -84.2000),
	}

	r := FrameRegion(nil, businesses)

	if r.CenterLat != 33.7729 || r.CenterLon != -84.3627 {
		t.Fatalf("expected center on first business, got %f, %f", r.CenterLat, r.CenterLon)
	}
	if r.LatDelta != metroLatDelta || r.LonDelta != metroLonDelta {
		t.Fatalf("expected metro deltas, got %f / %f", r.LatDelta, r.LonDelta)
	}
}

func TestFrameRegionEmptyInputs(t *testing.T) {
	r := FrameRegion(nil, nil)
	if r != DefaultRegion {
		t.Fatalf("expected default region, got %+v", r)
	}
}

func TestViewportRecomputesOnlyOnInputChange(t *testing.T) {
	v := NewViewport()
	loc := locAt(33.9427, -84.4407)
	businesses := []entity.Business{bizAt("b1", 33.7729, -84.3627)}

	first := v.Update(loc, businesses)
	if !v.Changed() {
		t.Fatal("first update must recompute")
	}

	// Same inputs: no recompute, no change signal.
	second := v.Update(locAt(33.9427, -84.4407), businesses)
	if v.Changed() {
		t.Fatal("unchanged inputs must not signal a region change")
	}
	if first != second {
		t.Fatalf("region drifted without input change: %+v vs %+v", first, second)
	}

	// New nearest business: recompute.
	moved := v.Update(loc, []entity.Business{bizAt("b9", 33.7490, -84.3880)})
	if !v.Changed() {
		t.Fatal("changed business list must recompute")
	}
	if moved == first {
		t.Fatal("expected a different region after business change")
	}
}
