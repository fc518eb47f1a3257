package buhrig

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/paulmach/go.geo"
)

// elevationFunc adapts a plain function to the ElevationSampler interface
// for tests.
type elevationFunc func(*geo.Point) (float64, bool)

func (f elevationFunc) ElevationAt(point *geo.Point) (float64, bool) {
	return f(point)
}

// vShapedCanyon returns -500 inside the canyon floor strip and -100 on the
// flanks, defined everywhere.
func vShapedCanyon(point *geo.Point) (float64, bool) {
	if math.Abs(point.Y()) < 500 {
		return -500, true
	}
	return -100, true
}

func newPath(points ...[2]float64) *geo.Path {
	path := geo.NewPath()
	for _, p := range points {
		path.Push(geo.NewPoint(p[0], p[1]))
	}
	return path
}

// testEdges builds straight rims parallel to the x axis at the given y
// offsets, spanning well past the test thalweg.
func testEdges(leftY, rightY float64) *EdgeSet {
	return &EdgeSet{
		Left:  []*geo.Path{newPath([2]float64{-5000, leftY}, [2]float64{15000, leftY})},
		Right: []*geo.Path{newPath([2]float64{-5000, rightY}, [2]float64{15000, rightY})},
	}
}

func testPipeline() *Pipeline {
	return New(
		newPath([2]float64{0, 0}, [2]float64{10000, 0}),
		testEdges(-1000, 1000),
		elevationFunc(vShapedCanyon),
	)
}

func TestDoEndToEnd(t *testing.T) {
	result, err := testPipeline().Do()
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if len(result.SamplePoints) != 5 {
		t.Fatalf("expected 5 sample points, got %d", len(result.SamplePoints))
	}
	if len(result.Profiles) != 5 {
		t.Fatalf("expected 5 profiles, got %d", len(result.Profiles))
	}
	for _, profile := range result.Profiles {
		if profile.Type != EdgeConstrained {
			t.Errorf("profile %d: expected edge_constrained, got %s", profile.ProfileID, profile.Type)
		}
	}

	if len(result.AllPoints) != 5*4 {
		t.Errorf("expected 20 key points, got %d", len(result.AllPoints))
	}
	if len(result.Metrics) != 5 {
		t.Errorf("expected 5 metric rows, got %d", len(result.Metrics))
	}

	report := result.Report
	if report.SamplePoints != 5 || report.Profiles != 5 ||
		report.EdgeConstrained != 5 || report.FallbackOrthogonal != 0 ||
		report.CompleteProfiles != 5 || len(report.Skips) != 0 {
		t.Errorf("unexpected report: %+v", report)
	}

	for _, m := range result.Metrics {
		if math.Abs(m.Wmax-2000) > 1e-6 {
			t.Errorf("profile %d: Wmax = %f, want 2000", m.ProfileID, m.Wmax)
		}
		if math.Abs(m.Dmax-400) > 1e-6 {
			t.Errorf("profile %d: Dmax = %f, want 400", m.ProfileID, m.Dmax)
		}
	}
}

func TestDoDeterministic(t *testing.T) {
	first, err := testPipeline().Do()
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	second, err := testPipeline().Do()
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if !reflect.DeepEqual(first.Metrics, second.Metrics) {
		t.Error("two runs on identical inputs produced different metrics")
	}
	if !reflect.DeepEqual(first.AllPoints, second.AllPoints) {
		t.Error("two runs on identical inputs produced different key points")
	}
}

func TestDoCuration(t *testing.T) {
	pipeline := testPipeline()
	pipeline.KeepProfile = func(profile Profile) bool {
		return profile.ProfileID != 0
	}

	result, err := pipeline.Do()
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	if result.Report.RejectedProfiles != 1 {
		t.Errorf("RejectedProfiles = %d, want 1", result.Report.RejectedProfiles)
	}
	if len(result.Curated) != 4 {
		t.Errorf("curated = %d profiles, want 4", len(result.Curated))
	}
	if len(result.Metrics) != 4 {
		t.Errorf("metrics = %d rows, want 4", len(result.Metrics))
	}
	for _, m := range result.Metrics {
		if m.ProfileID == 0 {
			t.Error("rejected profile 0 still present in metrics")
		}
	}
}

func TestDoInputContract(t *testing.T) {
	tests := []struct {
		name   string
		mangle func(*Pipeline)
		want   error
	}{
		{"nil thalweg", func(p *Pipeline) { p.Thalweg = nil }, ErrThalwegRequired},
		{"single point thalweg", func(p *Pipeline) { p.Thalweg = newPath([2]float64{0, 0}) }, ErrThalwegRequired},
		{"nil elevation", func(p *Pipeline) { p.Elevation = nil }, ErrElevationRequired},
		{"zero step", func(p *Pipeline) { p.StepDistance = 0 }, ErrBadParameter},
		{"negative fallback", func(p *Pipeline) { p.FallbackHalfLen = -1 }, ErrBadParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := testPipeline()
			tt.mangle(pipeline)

			_, err := pipeline.Do()
			if !errors.Is(err, tt.want) {
				t.Errorf("Do() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCrossSections(t *testing.T) {
	pipeline := testPipeline()
	pipeline.Edges = nil // fallback profiles have a known fixed length

	result, err := pipeline.Do()
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}

	sections := pipeline.CrossSections(result.Profiles[:1], elevationFunc(vShapedCanyon))

	// 17000 m at 200 m steps, endpoints included.
	if len(sections) != 86 {
		t.Fatalf("expected 86 cross-section samples, got %d", len(sections))
	}
	if sections[0].Distance != 0 {
		t.Errorf("first sample distance = %f, want 0", sections[0].Distance)
	}
	last := sections[len(sections)-1]
	if math.Abs(last.Distance-17000) > 1e-6 {
		t.Errorf("last sample distance = %f, want 17000", last.Distance)
	}
	for _, s := range sections {
		if s.Z != -500 && s.Z != -100 {
			t.Errorf("unexpected elevation %f", s.Z)
		}
	}
}
