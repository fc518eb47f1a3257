package buhrig

import (
	"math"
)

// ProfileMetrics is one row of the Bührig metrics table, derived purely
// from the four key points of a complete profile.
type ProfileMetrics struct {
	ProfileID   int
	Wmax        float64 // full width, W1+W2, planar
	W1          float64 // planar distance P2–P4
	W2          float64 // planar distance P3–P4
	Dmax        float64 // |z1 - z4|, elevation difference only
	H1          float64 // 3D distance P1–P2
	H2          float64 // 3D distance P1–P3
	B1          float64 // left wall angle, degrees
	B2          float64 // right wall angle, degrees
	SWmax       float64 // the steeper of B1, B2
	AspectRatio float64 // Wmax/Dmax, NaN when Dmax is zero
}

// ComputeMetrics derives the metrics table from an integrated key point
// set. Profiles missing any of the four points are omitted; they were
// already recorded as skips by the stage that dropped them.
func ComputeMetrics(points []KeyPoint) []ProfileMetrics {
	groups, order := groupByProfile(points)

	var metrics []ProfileMetrics
	for _, profileID := range order {
		group := groups[profileID]

		p1, ok1 := group[1]
		p2, ok2 := group[2]
		p3, ok3 := group[3]
		p4, ok4 := group[4]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}

		w1 := p2.Point.DistanceFrom(p4.Point)
		w2 := p3.Point.DistanceFrom(p4.Point)
		dmax := math.Abs(p1.Z - p4.Z)
		h1 := distance3D(p1, p2)
		h2 := distance3D(p1, p3)

		b1 := LawOfCosines(h1, dmax, w1)
		b2 := LawOfCosines(h2, dmax, w2)

		aspect := math.NaN()
		if dmax > 0 {
			aspect = (w1 + w2) / dmax
		}

		metrics = append(metrics, ProfileMetrics{
			ProfileID:   profileID,
			Wmax:        w1 + w2,
			W1:          w1,
			W2:          w2,
			Dmax:        dmax,
			H1:          h1,
			H2:          h2,
			B1:          b1,
			B2:          b2,
			SWmax:       math.Max(b1, b2),
			AspectRatio: aspect,
		})
	}

	return metrics
}

// LawOfCosines returns the angle between sides a and b of a triangle whose
// opposite side is c, in degrees. The cosine is clipped to [-1, 1] to absorb
// floating point overshoot in near-degenerate triangles. Non-positive a or b
// has no defined angle and yields NaN.
func LawOfCosines(a, b, c float64) float64 {
	if a <= 0 || b <= 0 {
		return math.NaN()
	}

	cos := (a*a + b*b - c*c) / (2 * a * b)
	cos = math.Min(1, math.Max(-1, cos))

	return math.Acos(cos) * 180 / math.Pi
}

// distance3D is the full Euclidean distance between two key points,
// combining the planar and elevation components.
func distance3D(p, q KeyPoint) float64 {
	dz := p.Z - q.Z
	return math.Sqrt(p.Point.SquaredDistanceFrom(q.Point) + dz*dz)
}
