package buhrig

import (
	"math"
	"testing"
)

func TestSampleThalwegCount(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		step   float64
		want   int
	}{
		{"non-multiple length", 9000, 2000, 5},   // floor(9000/2000)+1
		{"exact multiple", 10000, 2000, 5},       // the end point itself is excluded
		{"step longer than line", 1000, 2000, 1}, // only the origin
		{"unit steps", 10.5, 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := New(
				newPath([2]float64{0, 0}, [2]float64{tt.length, 0}),
				nil, elevationFunc(vShapedCanyon),
			)
			pipeline.StepDistance = tt.step

			samples := pipeline.SampleThalweg()
			if len(samples) != tt.want {
				t.Fatalf("got %d samples, want %d", len(samples), tt.want)
			}

			for i, sample := range samples {
				if sample.ProfileID != i {
					t.Errorf("sample %d: id = %d", i, sample.ProfileID)
				}
				if want := float64(i) * tt.step; sample.Distance != want {
					t.Errorf("sample %d: distance = %f, want %f", i, sample.Distance, want)
				}
				if sample.Distance >= tt.length {
					t.Errorf("sample %d: distance %f not strictly below length %f", i, sample.Distance, tt.length)
				}
			}
		})
	}
}

func TestSampleThalwegPositions(t *testing.T) {
	// A straight line along x, so distance along the line equals x.
	pipeline := New(
		newPath([2]float64{0, 0}, [2]float64{10000, 0}),
		nil, elevationFunc(vShapedCanyon),
	)

	for _, sample := range pipeline.SampleThalweg() {
		if math.Abs(sample.Point.X()-sample.Distance) > 1e-6 || sample.Point.Y() != 0 {
			t.Errorf("sample %d at (%f, %f), want (%f, 0)",
				sample.ProfileID, sample.Point.X(), sample.Point.Y(), sample.Distance)
		}
	}
}

func TestSampleThalwegMultiSegment(t *testing.T) {
	// An L-shaped line: 3000 m east then 3000 m north.
	pipeline := New(
		newPath([2]float64{0, 0}, [2]float64{3000, 0}, [2]float64{3000, 3000}),
		nil, elevationFunc(vShapedCanyon),
	)

	samples := pipeline.SampleThalweg()
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}

	// 4000 m along the line is 1000 m up the second leg.
	third := samples[2]
	if math.Abs(third.Point.X()-3000) > 1e-6 || math.Abs(third.Point.Y()-1000) > 1e-6 {
		t.Errorf("sample 2 at (%f, %f), want (3000, 1000)", third.Point.X(), third.Point.Y())
	}
}
