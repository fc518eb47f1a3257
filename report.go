package buhrig

import (
	"fmt"
)

// Stage names the pipeline stage that skipped an item.
type Stage string

const (
	StageProfiles  Stage = "profiles"
	StageKeyPoints Stage = "keypoints"
	StageP4        Stage = "p4"
)

// SkipReason classifies why a single sample point or profile was dropped.
// Skips are a normal part of a run over real bathymetry, not errors.
type SkipReason string

const (
	// SkipDegenerateTangent: the local thalweg direction had zero length,
	// so no perpendicular could be built.
	SkipDegenerateTangent SkipReason = "degenerate tangent"

	// SkipNoThalwegIntersection: the profile line never crossed the
	// thalweg, so there is no P1 and no record at all for the profile.
	SkipNoThalwegIntersection SkipReason = "no thalweg intersection"

	// SkipNoElevation: the talweg point fell outside the elevation surface
	// or on a missing-data cell.
	SkipNoElevation SkipReason = "no elevation at talweg point"

	// SkipMissingKeyPoints: P4 needs all of P1-P3 and at least one was
	// missing for the profile.
	SkipMissingKeyPoints SkipReason = "missing key points"

	// SkipCoincidentEdges: the rim points coincide, so the P2-P3 chord is
	// degenerate and no projection exists.
	SkipCoincidentEdges SkipReason = "coincident edge points"
)

// A Skip records one per-item drop with the stage it happened in.
type Skip struct {
	ProfileID int
	Stage     Stage
	Reason    SkipReason
}

// Report is the quality-control summary of one run: dataset sizes plus
// every per-item skip, so coverage can be audited after the fact.
type Report struct {
	SamplePoints       int
	Profiles           int
	EdgeConstrained    int
	FallbackOrthogonal int
	CuratedProfiles    int
	RejectedProfiles   int
	CompleteProfiles   int

	Skips []Skip
}

// CountBy returns how many items were skipped for the given reason.
func (r *Report) CountBy(reason SkipReason) int {
	n := 0
	for _, skip := range r.Skips {
		if skip.Reason == reason {
			n++
		}
	}
	return n
}

// Lines renders one audit line per skip reason that occurred, e.g.
// "2 of 117 sample points skipped: degenerate tangent", preceded by a
// line summarizing the run's coverage.
func (r *Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("%d sample points, %d profiles (%d edge constrained, %d fallback), %d curated, %d complete",
			r.SamplePoints, r.Profiles, r.EdgeConstrained, r.FallbackOrthogonal,
			r.CuratedProfiles, r.CompleteProfiles),
	}

	if r.RejectedProfiles > 0 {
		lines = append(lines, fmt.Sprintf("%d of %d profiles rejected by curation",
			r.RejectedProfiles, r.Profiles))
	}

	type key struct {
		stage  Stage
		reason SkipReason
	}
	counts := make(map[key]int)
	var order []key
	for _, skip := range r.Skips {
		k := key{skip.Stage, skip.Reason}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	for _, k := range order {
		total, unit := r.SamplePoints, "sample points"
		if k.stage != StageProfiles {
			total, unit = r.CuratedProfiles, "profiles"
		}
		lines = append(lines, fmt.Sprintf("%d of %d %s skipped: %s", counts[k], total, unit, k.reason))
	}

	return lines
}
