package buhrig

import (
	"github.com/paulmach/go.geo"
)

// An ElevationSampler defines what an elevation surface needs to do to be
// used by the pipeline. It should cover the same projected metric space as
// the vector inputs, with elevations negative below the datum.
type ElevationSampler interface {
	// ElevationAt returns the elevation of the cell containing the point.
	// The bool is false when the point is outside the surface or falls on
	// a missing-data cell.
	ElevationAt(point *geo.Point) (float64, bool)
}
