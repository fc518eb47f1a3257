package buhrig

import (
	"github.com/paulmach/go.geo"
)

// A SamplePoint marks one regularly spaced location along the thalweg.
// Its id is shared with the transversal profile built from it.
type SamplePoint struct {
	ProfileID int
	Distance  float64 // arc length from the thalweg's first vertex
	Point     *geo.Point
}

// SampleThalweg walks the thalweg from its first vertex, emitting a sample
// every StepDistance meters while the distance stays strictly below the
// total length. The thalweg's stored vertex order is taken as the canyon
// flow direction; no reversal or direction detection is performed.
func (p *Pipeline) SampleThalweg() []SamplePoint {
	total := p.Thalweg.Distance()

	var samples []SamplePoint
	for i := 0; ; i++ {
		d := float64(i) * p.StepDistance
		if d >= total {
			break
		}

		samples = append(samples, SamplePoint{
			ProfileID: i,
			Distance:  d,
			Point:     pointAt(p.Thalweg, d),
		})
	}

	return samples
}

// pointAt returns the position the given arc length along the path,
// clamped to its ends. This is the linear referencing used by both the
// sampler and the tangent estimation.
func pointAt(path *geo.Path, distance float64) *geo.Point {
	if distance <= 0 {
		return path.GetAt(0).Clone()
	}

	for i := 0; i < path.Length()-1; i++ {
		segment := geo.NewLine(path.GetAt(i), path.GetAt(i+1))
		length := segment.Distance()
		if distance <= length {
			return segment.Interpolate(distance / length)
		}
		distance -= length
	}

	return path.GetAt(path.Length() - 1).Clone()
}
