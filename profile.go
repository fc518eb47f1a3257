package buhrig

import (
	"math"

	"github.com/paulmach/go.geo"
)

// ProfileType tags how a transversal profile was constructed.
type ProfileType string

const (
	// EdgeConstrained profiles intersect both rims and span the full
	// cross-section plus the configured margin.
	EdgeConstrained ProfileType = "edge_constrained"

	// FallbackOrthogonal profiles are fixed-length segments emitted where
	// one or both rim intersections are missing. They guarantee coverage
	// but are geometrically unconstrained and flagged for expert review.
	FallbackOrthogonal ProfileType = "fallback_orthogonal"
)

// A Profile is one transversal cross-section segment, perpendicular to the
// thalweg at its sample point and sharing that sample point's id.
type Profile struct {
	ProfileID int
	Type      ProfileType
	Line      *geo.Line
}

// BuildProfiles constructs one transversal profile per sample point. A
// sample point whose local tangent degenerates to a zero-length vector
// yields no profile and is recorded as a skip; every other sample point
// yields exactly one profile of one of the two types.
func (p *Pipeline) BuildProfiles(samples []SamplePoint) ([]Profile, []Skip) {
	total := p.Thalweg.Distance()

	var profiles []Profile
	var skips []Skip

	for _, sample := range samples {
		// Local tangent from two thalweg positions straddling the sample,
		// clamped to the ends of the line.
		d0 := math.Max(sample.Distance-p.TangentDelta, 0)
		d1 := math.Min(sample.Distance+p.TangentDelta, total)

		tangent := pointAt(p.Thalweg, d1).Subtract(pointAt(p.Thalweg, d0))
		if tangent.DistanceFrom(geo.NewPoint(0, 0)) == 0 {
			// Stationary spot on the thalweg, e.g. an exact double-back.
			skips = append(skips, Skip{
				ProfileID: sample.ProfileID,
				Stage:     StageProfiles,
				Reason:    SkipDegenerateTangent,
			})
			continue
		}
		tangent.Normalize()

		normal := geo.NewPoint(-tangent.Y(), tangent.X())

		// A provisional line long enough to guarantee crossing the rims
		// for a canyon of this scale.
		provisional := geo.NewLine(
			offset(sample.Point, normal, -p.ProvisionalHalfLen),
			offset(sample.Point, normal, p.ProvisionalHalfLen),
		)

		left := p.Edges.IntersectLeft(provisional)
		right := p.Edges.IntersectRight(provisional)

		if left != nil && right != nil {
			profiles = append(profiles, Profile{
				ProfileID: sample.ProfileID,
				Type:      EdgeConstrained,
				Line: geo.NewLine(
					offset(left, normal, -p.EdgeMargin),
					offset(right, normal, p.EdgeMargin),
				),
			})
			continue
		}

		profiles = append(profiles, Profile{
			ProfileID: sample.ProfileID,
			Type:      FallbackOrthogonal,
			Line: geo.NewLine(
				offset(sample.Point, normal, -p.FallbackHalfLen),
				offset(sample.Point, normal, p.FallbackHalfLen),
			),
		})
	}

	return profiles, skips
}

// offset returns point + distance*direction without touching its inputs.
func offset(point, direction *geo.Point, distance float64) *geo.Point {
	return point.Clone().Add(direction.Clone().Scale(distance))
}
