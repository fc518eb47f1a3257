package buhrig

import (
	"github.com/paulmach/go.geo"
)

// SolveP4 derives the fourth key point for every profile that has all of
// P1–P3: the scalar projection of the talweg point onto the directed
// P2–P3 chord. The projection parameter is deliberately unclamped, so P4
// may fall beyond either rim point when the talweg projects outside the
// chord. P4's elevation is interpolated linearly along the chord, never
// sampled from the elevation surface.
func SolveP4(points []KeyPoint) ([]KeyPoint, []Skip) {
	groups, order := groupByProfile(points)

	var derived []KeyPoint
	var skips []Skip

	for _, profileID := range order {
		group := groups[profileID]

		p1, ok1 := group[1]
		p2, ok2 := group[2]
		p3, ok3 := group[3]
		if !ok1 || !ok2 || !ok3 {
			skips = append(skips, Skip{
				ProfileID: profileID,
				Stage:     StageP4,
				Reason:    SkipMissingKeyPoints,
			})
			continue
		}

		chord := geo.NewLine(p2.Point, p3.Point)
		if chord.SquaredDistance() == 0 {
			skips = append(skips, Skip{
				ProfileID: profileID,
				Stage:     StageP4,
				Reason:    SkipCoincidentEdges,
			})
			continue
		}

		t := chord.Project(p1.Point)

		derived = append(derived, KeyPoint{
			ProfileID: profileID,
			PointID:   4,
			Name:      NameWmaxDmax,
			Point:     chord.Interpolate(t),
			Z:         p2.Z + t*(p3.Z-p2.Z),
		})
	}

	return derived, skips
}
