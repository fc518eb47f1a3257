// Package buhrig computes standardized Bührig shape metrics describing the
// cross-sectional form of a submarine canyon. Given a thalweg line, the two
// canyon rim delineations and a bathymetric elevation surface, it samples the
// thalweg at fixed arc-length steps, constructs a perpendicular transversal
// profile at each sample, extracts the four characteristic points of each
// cross-section (talweg, both rims and the width/depth intersection) and
// derives width, depth, wall angle and aspect-ratio metrics per profile.
//
// All geometry is planar and assumed to be in a single projected metric
// coordinate system shared by every input.
package buhrig

import (
	"errors"
	"time"

	"github.com/paulmach/go.geo"
)

// Parameter defaults, in meters.
const (
	DefaultStepDistance       = 2000.0
	DefaultTangentDelta       = 10.0
	DefaultProvisionalHalfLen = 20000.0
	DefaultEdgeMargin         = 3000.0
	DefaultFallbackHalfLen    = 8500.0
	DefaultCrossSectionStep   = 200.0
)

var (
	// ErrThalwegRequired is returned by Do when the thalweg is missing or
	// is not a line of at least two points.
	ErrThalwegRequired = errors.New("buhrig: thalweg must be a line with at least two points")

	// ErrElevationRequired is returned by Do when no elevation sampler is set.
	ErrElevationRequired = errors.New("buhrig: an elevation sampler is required")

	// ErrBadParameter is returned by Do when a step distance or length
	// parameter is not positive.
	ErrBadParameter = errors.New("buhrig: step distances and profile lengths must be positive")
)

// Pipeline holds all the inputs and tunables to compute the metrics for one
// canyon. Inputs are never mutated; each run is a pure function of them.
type Pipeline struct {
	Thalweg   *geo.Path
	Edges     *EdgeSet
	Elevation ElevationSampler

	// KeepProfile is the curation hook applied between profile construction
	// and key-point extraction, standing in for the expert review of
	// fallback profiles. A nil func keeps every profile.
	KeepProfile func(Profile) bool

	StepDistance       float64 // spacing of sample points along the thalweg
	TangentDelta       float64 // offset used to estimate the local tangent
	ProvisionalHalfLen float64 // half-length of the provisional normal line
	EdgeMargin         float64 // extension beyond each rim intersection
	FallbackHalfLen    float64 // half-length of a fallback profile
	CrossSectionStep   float64 // spacing of validation cross-section samples
}

// Result contains the datasets produced by one run.
type Result struct {
	SamplePoints []SamplePoint
	Profiles     []Profile // every constructed profile, both types
	Curated      []Profile // the profiles that passed curation
	KeyPoints    []KeyPoint // P1–P3 as extracted
	AllPoints    []KeyPoint // P1–P4 integrated, ordered by profile and point id
	Metrics      []ProfileMetrics
	Report       Report
	Runtime      time.Duration
}

// New creates a Pipeline for the given inputs with the default parameters.
// Edges may be nil or one-sided, in which case the affected profiles are
// built with the fallback geometry.
func New(thalweg *geo.Path, edges *EdgeSet, elevation ElevationSampler) *Pipeline {
	return &Pipeline{
		Thalweg:   thalweg,
		Edges:     edges,
		Elevation: elevation,

		StepDistance:       DefaultStepDistance,
		TangentDelta:       DefaultTangentDelta,
		ProvisionalHalfLen: DefaultProvisionalHalfLen,
		EdgeMargin:         DefaultEdgeMargin,
		FallbackHalfLen:    DefaultFallbackHalfLen,
		CrossSectionStep:   DefaultCrossSectionStep,
	}
}

// Do runs the full pipeline: sample, build profiles, curate, extract key
// points, solve P4 and compute the metrics. It returns an error only for
// input contract violations; per-item degeneracies become skip records in
// the result's report.
func (p *Pipeline) Do() (*Result, error) {
	if p.Thalweg == nil || p.Thalweg.Length() < 2 {
		return nil, ErrThalwegRequired
	}

	if p.Elevation == nil {
		return nil, ErrElevationRequired
	}

	if p.StepDistance <= 0 || p.TangentDelta <= 0 ||
		p.ProvisionalHalfLen <= 0 || p.EdgeMargin < 0 || p.FallbackHalfLen <= 0 {
		return nil, ErrBadParameter
	}

	start := time.Now()

	samples := p.SampleThalweg()
	profiles, profileSkips := p.BuildProfiles(samples)

	curated := profiles
	rejected := 0
	if p.KeepProfile != nil {
		curated = make([]Profile, 0, len(profiles))
		for _, profile := range profiles {
			if p.KeepProfile(profile) {
				curated = append(curated, profile)
			} else {
				rejected++
			}
		}
	}

	keyPoints, keyPointSkips := p.ExtractKeyPoints(curated)
	p4s, p4Skips := SolveP4(keyPoints)
	all := Integrate(keyPoints, p4s)
	metrics := ComputeMetrics(all)

	report := Report{
		SamplePoints:     len(samples),
		Profiles:         len(profiles),
		CuratedProfiles:  len(curated),
		RejectedProfiles: rejected,
		CompleteProfiles: len(metrics),
	}

	for _, profile := range profiles {
		if profile.Type == EdgeConstrained {
			report.EdgeConstrained++
		} else {
			report.FallbackOrthogonal++
		}
	}

	report.Skips = append(report.Skips, profileSkips...)
	report.Skips = append(report.Skips, keyPointSkips...)
	report.Skips = append(report.Skips, p4Skips...)

	return &Result{
		SamplePoints: samples,
		Profiles:     profiles,
		Curated:      curated,
		KeyPoints:    keyPoints,
		AllPoints:    all,
		Metrics:      metrics,
		Report:       report,
		Runtime:      time.Since(start),
	}, nil
}
