package geo

import (
	"math"

	"locker-rental/internal/data/entity"
)

// Region is a map viewport: center plus latitude/longitude zoom deltas.
type Region struct {
	CenterLat float64
	CenterLon float64
	LatDelta  float64
	LonDelta  float64
}

const (
	// spanPadding stretches the raw coordinate spans so both endpoints
	// sit comfortably inside the viewport rather than on its edge.
	spanPadding = 2.5

	// minDelta floors each span so the region never degenerates when the
	// user and the nearest business (nearly) coincide.
	minDelta = 0.05

	// Metro-level zoom used when only a single point is known.
	metroLatDelta = 0.09
	metroLonDelta = 0.04
)

// DefaultRegion is the fixed city region shown before anything is known:
// downtown Atlanta at a city-wide zoom.
var DefaultRegion = Region{
	CenterLat: 33.7490,
	CenterLon: -84.3880,
	LatDelta:  0.0922,
	LonDelta:  0.0421,
}

// FrameRegion computes the viewport for a user location and a business
// list already sorted by ascending distance (the sort is a precondition,
// not re-verified here). The rules apply in strict priority order:
//
//  1. location and businesses: midpoint of user and nearest business,
//     spans padded then floored at minDelta
//  2. location only: user at metro zoom
//  3. businesses only: nearest business at metro zoom
//  4. neither: DefaultRegion
func FrameRegion(loc *entity.Location, businesses []entity.Business) Region {
	switch {
	case loc != nil && len(businesses) > 0:
		nearest := businesses[0]
		nLat := nearest.Location.Latitude()
		nLon := nearest.Location.Longitude()
		return Region{
			CenterLat: (loc.Latitude + nLat) / 2,
			CenterLon: (loc.Longitude + nLon) / 2,
			LatDelta:  math.Max(math.Abs(loc.Latitude-nLat)*spanPadding, minDelta),
			LonDelta:  math.Max(math.Abs(loc.Longitude-nLon)*spanPadding, minDelta),
		}
	case loc != nil:
		return Region{
			CenterLat: loc.Latitude,
			CenterLon: loc.Longitude,
			LatDelta:  metroLatDelta,
			LonDelta:  metroLonDelta,
		}
	case len(businesses) > 0:
		first := businesses[0]
		return Region{
			CenterLat: first.Location.Latitude(),
			CenterLon: first.Location.Longitude(),
			LatDelta:  metroLatDelta,
			LonDelta:  metroLonDelta,
		}
	default:
		return DefaultRegion
	}
}

// Viewport memoizes FrameRegion inputs so the region is recomputed only
// when the location or the business list actually changes, not on every
// render pass. Changed reports whether the last Update produced a new
// region; callers use it to drive the imperative map animation in
// addition to the declarative target, which guarantees a visible
// transition even when the widget's diffing would suppress the update.
type Viewport struct {
	region  Region
	haveLoc bool
	lastLoc entity.Location
	lastIDs []string
	primed  bool
	changed bool
}

func NewViewport() *Viewport {
	return &Viewport{region: DefaultRegion}
}

// Update recomputes the region if the inputs differ from the previous
// call and returns the current region.
func (v *Viewport) Update(loc *entity.Location, businesses []entity.Business) Region {
	ids := make([]string, len(businesses))
	for i := range businesses {
		ids[i] = businesses[i].ID
	}
	if v.primed && !v.inputsChanged(loc, ids) {
		v.changed = false
		return v.region
	}

	v.region = FrameRegion(loc, businesses)
	v.haveLoc = loc != nil
	if loc != nil {
		v.lastLoc = *loc
	}
	v.lastIDs = ids
	v.primed = true
	v.changed = true
	return v.region
}

// Region returns the last computed region.
func (v *Viewport) Region() Region {
	return v.region
}

// Changed reports whether the last Update recomputed the region.
func (v *Viewport) Changed() bool {
	return v.changed
}

func (v *Viewport) inputsChanged(loc *entity.Location, ids []string) bool {
	if (loc != nil) != v.haveLoc {
		return true
	}
	if loc != nil && (loc.Latitude != v.lastLoc.Latitude || loc.Longitude != v.lastLoc.Longitude) {
		return true
	}
	if len(ids) != len(v.lastIDs) {
		return true
	}
	for i := range ids {
		if ids[i] != v.lastIDs[i] {
			return true
		}
	}
	return false
}
