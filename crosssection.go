package buhrig

import (
	"github.com/paulmach/go.geo"
)

// A CrossSectionSample is one elevation reading along a profile line, used
// to draw the terrain cross-section for expert review.
type CrossSectionSample struct {
	ProfileID int
	Distance  float64 // along the profile from its first endpoint
	Point     *geo.Point
	Z         float64
}

// CrossSections samples the given elevation surface at CrossSectionStep
// intervals along each profile, including both endpoints' cells when they
// land on the surface. Readings off the surface or on missing cells are
// dropped rather than interpolated. The sampler is a parameter so callers
// can pass a smoothed copy of the surface without affecting the metrics,
// which always use the raw grid.
func (p *Pipeline) CrossSections(profiles []Profile, sampler ElevationSampler) []CrossSectionSample {
	var samples []CrossSectionSample

	for _, profile := range profiles {
		length := profile.Line.Distance()
		if length == 0 {
			continue
		}

		for d := 0.0; d <= length; d += p.CrossSectionStep {
			point := profile.Line.Interpolate(d / length)
			z, ok := sampler.ElevationAt(point)
			if !ok {
				continue
			}

			samples = append(samples, CrossSectionSample{
				ProfileID: profile.ProfileID,
				Distance:  d,
				Point:     point,
				Z:         z,
			})
		}
	}

	return samples
}
