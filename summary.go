package buhrig

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// A MetricSummary describes the distribution of one metric across all
// complete profiles of a run.
type MetricSummary struct {
	Name   string
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes distribution statistics for each metric column,
// for the end-of-run report. NaN values, such as undefined aspect ratios
// on zero-depth profiles, are excluded column by column.
func Summarize(metrics []ProfileMetrics) []MetricSummary {
	columns := []struct {
		name string
		get  func(ProfileMetrics) float64
	}{
		{"Wmax_m", func(m ProfileMetrics) float64 { return m.Wmax }},
		{"W1_m", func(m ProfileMetrics) float64 { return m.W1 }},
		{"W2_m", func(m ProfileMetrics) float64 { return m.W2 }},
		{"Dmax_m", func(m ProfileMetrics) float64 { return m.Dmax }},
		{"H1_m", func(m ProfileMetrics) float64 { return m.H1 }},
		{"H2_m", func(m ProfileMetrics) float64 { return m.H2 }},
		{"B1_deg", func(m ProfileMetrics) float64 { return m.B1 }},
		{"B2_deg", func(m ProfileMetrics) float64 { return m.B2 }},
		{"SWmax_deg", func(m ProfileMetrics) float64 { return m.SWmax }},
		{"Aspect_ratio_W_D", func(m ProfileMetrics) float64 { return m.AspectRatio }},
	}

	summaries := make([]MetricSummary, 0, len(columns))
	for _, column := range columns {
		values := make([]float64, 0, len(metrics))
		for _, m := range metrics {
			if v := column.get(m); !math.IsNaN(v) {
				values = append(values, v)
			}
		}

		summary := MetricSummary{Name: column.name, Count: len(values)}
		if len(values) > 0 {
			sort.Float64s(values)
			summary.Mean = stat.Mean(values, nil)
			summary.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
			summary.StdDev = stat.StdDev(values, nil)
			summary.Min = values[0]
			summary.Max = values[len(values)-1]
		}

		summaries = append(summaries, summary)
	}

	return summaries
}
