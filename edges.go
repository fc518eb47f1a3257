package buhrig

import (
	"math"

	"github.com/paulmach/go.geo"
)

// An EdgeSet holds the rim delineations for the two canyon sides. Each side
// may consist of several disconnected parts; intersection queries treat a
// side as the union of its parts.
type EdgeSet struct {
	Left  []*geo.Path
	Right []*geo.Path
}

// IntersectLeft intersects the line with the unioned left rim and collapses
// the result to a single representative point, or nil when they do not touch.
func (e *EdgeSet) IntersectLeft(line *geo.Line) *geo.Point {
	if e == nil {
		return nil
	}
	return collapseIntersection(e.Left, line)
}

// IntersectRight is the right-side counterpart of IntersectLeft.
func (e *EdgeSet) IntersectRight(line *geo.Line) *geo.Point {
	if e == nil {
		return nil
	}
	return collapseIntersection(e.Right, line)
}

// collapseIntersection gathers every crossing of the line with the parts and
// returns the centroid of the combined point set. Multi-point results from a
// sinuous rim collapse to one representative location this way.
func collapseIntersection(parts []*geo.Path, line *geo.Line) *geo.Point {
	set := geo.NewPointSet()
	for _, part := range parts {
		points, _ := part.Intersection(line)
		for _, point := range points {
			// A rim segment collinear with the line reports an infinite
			// point instead of a crossing.
			if math.IsInf(point.X(), 0) || math.IsInf(point.Y(), 0) {
				continue
			}
			set.Push(point)
		}
	}

	if set.Length() == 0 {
		return nil
	}

	return set.Centroid()
}
