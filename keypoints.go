package buhrig

import (
	"sort"

	"github.com/paulmach/go.geo"
)

// Key point names as they appear in the exported datasets.
const (
	NameTalweg    = "Talweg"
	NameEdgeLeft  = "Edge_Left"
	NameEdgeRight = "Edge_Right"
	NameWmaxDmax  = "Wmax_Dmax_Intersection"
)

// A KeyPoint is one of the four characteristic points of a cross-section:
// 1 talweg, 2 left rim, 3 right rim, 4 the derived width/depth intersection.
type KeyPoint struct {
	ProfileID int
	PointID   int
	Name      string
	Point     *geo.Point
	Z         float64 // signed elevation, negative below the datum
}

// ExtractKeyPoints recovers P1–P3 for each curated profile. A profile with
// no thalweg crossing, or whose thalweg crossing has no elevation cell,
// produces no points at all; a missing rim crossing only omits that rim's
// point, leaving a partial record. Elevations are nearest-cell lookups at
// the exact point coordinates.
func (p *Pipeline) ExtractKeyPoints(profiles []Profile) ([]KeyPoint, []Skip) {
	var points []KeyPoint
	var skips []Skip

	for _, profile := range profiles {
		midpoint := profile.Line.Midpoint()

		// P1: the profile may cross a locally non-monotonic thalweg more
		// than once; the crossing nearest the profile's own midpoint wins.
		candidates, _ := p.Thalweg.Intersection(profile.Line)
		if len(candidates) == 0 {
			skips = append(skips, Skip{
				ProfileID: profile.ProfileID,
				Stage:     StageKeyPoints,
				Reason:    SkipNoThalwegIntersection,
			})
			continue
		}

		p1 := nearestPoint(candidates, midpoint)
		z1, ok := p.Elevation.ElevationAt(p1)
		if !ok {
			skips = append(skips, Skip{
				ProfileID: profile.ProfileID,
				Stage:     StageKeyPoints,
				Reason:    SkipNoElevation,
			})
			continue
		}

		points = append(points, KeyPoint{
			ProfileID: profile.ProfileID,
			PointID:   1,
			Name:      NameTalweg,
			Point:     p1,
			Z:         z1,
		})

		if p2 := p.Edges.IntersectLeft(profile.Line); p2 != nil {
			if z, ok := p.Elevation.ElevationAt(p2); ok {
				points = append(points, KeyPoint{
					ProfileID: profile.ProfileID,
					PointID:   2,
					Name:      NameEdgeLeft,
					Point:     p2,
					Z:         z,
				})
			}
		}

		if p3 := p.Edges.IntersectRight(profile.Line); p3 != nil {
			if z, ok := p.Elevation.ElevationAt(p3); ok {
				points = append(points, KeyPoint{
					ProfileID: profile.ProfileID,
					PointID:   3,
					Name:      NameEdgeRight,
					Point:     p3,
					Z:         z,
				})
			}
		}
	}

	return points, skips
}

// Integrate merges the extracted and derived key points into one dataset
// ordered by profile and point id, the order the exports use.
func Integrate(extracted, derived []KeyPoint) []KeyPoint {
	all := make([]KeyPoint, 0, len(extracted)+len(derived))
	all = append(all, extracted...)
	all = append(all, derived...)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].ProfileID != all[j].ProfileID {
			return all[i].ProfileID < all[j].ProfileID
		}
		return all[i].PointID < all[j].PointID
	})

	return all
}

func nearestPoint(candidates []*geo.Point, to *geo.Point) *geo.Point {
	best := candidates[0]
	bestDistance := best.SquaredDistanceFrom(to)

	for _, candidate := range candidates[1:] {
		if d := candidate.SquaredDistanceFrom(to); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}

// groupByProfile indexes key points as profile id -> point id -> point,
// keeping the profile ids in order of first appearance. A later duplicate
// of a (profile, point) pair is ignored.
func groupByProfile(points []KeyPoint) (map[int]map[int]KeyPoint, []int) {
	groups := make(map[int]map[int]KeyPoint)
	var order []int

	for _, point := range points {
		group, ok := groups[point.ProfileID]
		if !ok {
			group = make(map[int]KeyPoint)
			groups[point.ProfileID] = group
			order = append(order, point.ProfileID)
		}
		if _, ok := group[point.PointID]; !ok {
			group[point.PointID] = point
		}
	}

	return groups, order
}
