package buhrig

import (
	"math"
	"testing"

	"github.com/paulmach/go.geo"
)

func TestExtractKeyPointsComplete(t *testing.T) {
	pipeline := testPipeline()
	profiles, _ := pipeline.BuildProfiles(pipeline.SampleThalweg())

	points, skips := pipeline.ExtractKeyPoints(profiles)
	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(points) != 3*len(profiles) {
		t.Fatalf("got %d key points for %d profiles, want %d", len(points), len(profiles), 3*len(profiles))
	}

	groups, _ := groupByProfile(points)
	for _, profile := range profiles {
		group := groups[profile.ProfileID]

		p1 := group[1]
		if p1.Name != NameTalweg || math.Abs(p1.Point.Y()) > 1e-6 {
			t.Errorf("profile %d: P1 = %+v", profile.ProfileID, p1)
		}
		if p1.Z != -500 {
			t.Errorf("profile %d: P1 z = %f, want -500", profile.ProfileID, p1.Z)
		}

		p2 := group[2]
		if p2.Name != NameEdgeLeft || math.Abs(p2.Point.Y()-(-1000)) > 1e-6 || p2.Z != -100 {
			t.Errorf("profile %d: P2 = %+v", profile.ProfileID, p2)
		}

		p3 := group[3]
		if p3.Name != NameEdgeRight || math.Abs(p3.Point.Y()-1000) > 1e-6 || p3.Z != -100 {
			t.Errorf("profile %d: P3 = %+v", profile.ProfileID, p3)
		}
	}
}

func TestExtractKeyPointsTieBreak(t *testing.T) {
	// A thalweg that doubles back across the profile: two crossings of the
	// vertical profile line, at y = 0 and y = 50. The crossing nearest the
	// profile midpoint (y = 0) must win.
	pipeline := New(
		newPath(
			[2]float64{-100, 0},
			[2]float64{100, 0},
			[2]float64{100, 50},
			[2]float64{-100, 50},
		),
		nil, elevationFunc(vShapedCanyon),
	)

	profile := Profile{
		ProfileID: 7,
		Type:      FallbackOrthogonal,
		Line:      geo.NewLine(geo.NewPoint(0, -100), geo.NewPoint(0, 100)),
	}

	points, skips := pipeline.ExtractKeyPoints([]Profile{profile})
	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}

	var p1 *KeyPoint
	for i := range points {
		if points[i].PointID == 1 {
			p1 = &points[i]
		}
	}
	if p1 == nil {
		t.Fatal("no P1 extracted")
	}
	if p1.Point.Y() != 0 {
		t.Errorf("P1 y = %f, want the crossing at 0", p1.Point.Y())
	}
}

func TestExtractKeyPointsNoThalwegCrossing(t *testing.T) {
	pipeline := testPipeline()

	// A profile nowhere near the thalweg: no P1, so no record at all.
	far := Profile{
		ProfileID: 3,
		Type:      FallbackOrthogonal,
		Line:      geo.NewLine(geo.NewPoint(50000, 1000), geo.NewPoint(50000, 2000)),
	}

	points, skips := pipeline.ExtractKeyPoints([]Profile{far})
	if len(points) != 0 {
		t.Fatalf("expected no key points, got %d", len(points))
	}
	if len(skips) != 1 || skips[0].Reason != SkipNoThalwegIntersection || skips[0].ProfileID != 3 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
}

func TestExtractKeyPointsNoElevation(t *testing.T) {
	pipeline := testPipeline()
	pipeline.Elevation = elevationFunc(func(*geo.Point) (float64, bool) {
		return 0, false
	})

	profiles, _ := pipeline.BuildProfiles(pipeline.SampleThalweg())
	points, skips := pipeline.ExtractKeyPoints(profiles[:1])

	if len(points) != 0 {
		t.Fatalf("expected no key points, got %d", len(points))
	}
	if len(skips) != 1 || skips[0].Reason != SkipNoElevation || skips[0].Stage != StageKeyPoints {
		t.Fatalf("unexpected skips: %+v", skips)
	}
}

func TestExtractKeyPointsPartialRecord(t *testing.T) {
	// Rims exist but sit beyond the profile segment: P1 only.
	pipeline := testPipeline()
	pipeline.Edges = testEdges(-30000, 30000)

	profile := Profile{
		ProfileID: 0,
		Type:      FallbackOrthogonal,
		Line:      geo.NewLine(geo.NewPoint(2000, -8500), geo.NewPoint(2000, 8500)),
	}

	points, skips := pipeline.ExtractKeyPoints([]Profile{profile})
	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(points) != 1 || points[0].PointID != 1 {
		t.Fatalf("expected a lone P1, got %+v", points)
	}
}

func TestIntegrateOrder(t *testing.T) {
	extracted := []KeyPoint{
		{ProfileID: 1, PointID: 1},
		{ProfileID: 1, PointID: 2},
		{ProfileID: 0, PointID: 1},
		{ProfileID: 0, PointID: 3},
	}
	derived := []KeyPoint{
		{ProfileID: 1, PointID: 4},
		{ProfileID: 0, PointID: 4},
	}

	all := Integrate(extracted, derived)

	want := []struct{ profile, point int }{
		{0, 1}, {0, 3}, {0, 4},
		{1, 1}, {1, 2}, {1, 4},
	}
	if len(all) != len(want) {
		t.Fatalf("got %d points, want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].ProfileID != w.profile || all[i].PointID != w.point {
			t.Errorf("position %d: got (%d, %d), want (%d, %d)",
				i, all[i].ProfileID, all[i].PointID, w.profile, w.point)
		}
	}
}
