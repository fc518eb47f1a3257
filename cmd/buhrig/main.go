// Command buhrig runs the full canyon metrics pipeline as a batch job:
// it loads the DEM, thalweg and edge datasets named in the config file,
// computes the transversal profiles, key points and Bührig metrics, and
// writes every output dataset into the configured directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	buhrig "github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1"
	"github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1/dem"
	"github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1/featureio"
)

var log *zap.SugaredLogger

func main() {
	cfgFile := flag.String("config", "config.yaml", "Path to config file (default: ./config.yaml)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	// Set up our logger
	var zapLogger *zap.Logger
	var err error
	if *debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	log = zapLogger.Sugar()

	filename, _ := filepath.Abs(*cfgFile)
	cfg, err := NewConfig(filename)
	if err != nil {
		log.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %v", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	grid, err := dem.OpenEsriASCII(cfg.DEM)
	if err != nil {
		return err
	}
	log.Infow("loaded dem", "path", cfg.DEM, "width", grid.Width, "height", grid.Height, "cellsize", grid.CellSize())

	thalweg, err := featureio.ReadThalweg(cfg.Thalweg)
	if err != nil {
		return err
	}
	log.Infow("loaded thalweg", "path", cfg.Thalweg, "length_m", thalweg.Distance())

	edges, err := featureio.ReadEdges(cfg.Edges)
	if err != nil {
		return err
	}
	log.Infow("loaded edges", "path", cfg.Edges, "left_parts", len(edges.Left), "right_parts", len(edges.Right))

	pipeline := buhrig.New(thalweg, edges, grid)
	applyOverrides(pipeline, cfg)
	pipeline.KeepProfile = curationFunc(cfg)

	result, err := pipeline.Do()
	if err != nil {
		return err
	}
	log.Infow("pipeline finished", "runtime", result.Runtime)
	for _, line := range result.Report.Lines() {
		log.Info(line)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}
	out := func(name string) string { return filepath.Join(cfg.OutputDir, name) }

	writes := []struct {
		name  string
		write func() error
	}{
		{"thalweg_points.geojson", func() error {
			return featureio.WriteSamplePoints(out("thalweg_points.geojson"), result.SamplePoints)
		}},
		{"transversal_profiles.geojson", func() error {
			return featureio.WriteProfiles(out("transversal_profiles.geojson"), result.Profiles)
		}},
		{"profile_keypoints_P1_P2_P3.geojson", func() error {
			return featureio.WriteKeyPoints(out("profile_keypoints_P1_P2_P3.geojson"), result.KeyPoints)
		}},
		{"profile_keypoints_P1_P2_P3.csv", func() error {
			return featureio.WriteKeyPointsCSV(out("profile_keypoints_P1_P2_P3.csv"), result.KeyPoints)
		}},
		{"profile_keypoints_P1_P2_P3_P4.geojson", func() error {
			return featureio.WriteKeyPoints(out("profile_keypoints_P1_P2_P3_P4.geojson"), result.AllPoints)
		}},
		{"profile_keypoints_P1_P2_P3_P4.csv", func() error {
			return featureio.WriteKeyPointsCSV(out("profile_keypoints_P1_P2_P3_P4.csv"), result.AllPoints)
		}},
		{"buhrig_metrics_all_profiles.csv", func() error {
			return featureio.WriteMetricsCSV(out("buhrig_metrics_all_profiles.csv"), result.Metrics)
		}},
	}

	for _, w := range writes {
		if err := w.write(); err != nil {
			return err
		}
		log.Infow("wrote output", "file", w.name)
	}

	// Terrain cross-sections for review, over an optionally smoothed copy
	// of the DEM. Metrics above always used the raw grid.
	sampler := buhrig.ElevationSampler(grid)
	if cfg.SmoothingStdDev > 0 {
		sampler = dem.Smooth(grid, dem.Kernel(cfg.SmoothingStdDev, grid.CellSize()))
	}
	sections := pipeline.CrossSections(result.Curated, sampler)
	if err := featureio.WriteCrossSectionsCSV(out("validation_cross_sections.csv"), sections); err != nil {
		return err
	}
	log.Infow("wrote output", "file", "validation_cross_sections.csv", "samples", len(sections))

	for _, summary := range buhrig.Summarize(result.Metrics) {
		log.Infow("metric summary", "metric", summary.Name, "n", summary.Count,
			"mean", summary.Mean, "median", summary.Median, "stddev", summary.StdDev,
			"min", summary.Min, "max", summary.Max)
	}

	return nil
}

func applyOverrides(pipeline *buhrig.Pipeline, cfg Config) {
	if cfg.StepDistance > 0 {
		pipeline.StepDistance = cfg.StepDistance
	}
	if cfg.TangentDelta > 0 {
		pipeline.TangentDelta = cfg.TangentDelta
	}
	if cfg.ProvisionalHalfLen > 0 {
		pipeline.ProvisionalHalfLen = cfg.ProvisionalHalfLen
	}
	if cfg.EdgeMargin > 0 {
		pipeline.EdgeMargin = cfg.EdgeMargin
	}
	if cfg.FallbackHalfLen > 0 {
		pipeline.FallbackHalfLen = cfg.FallbackHalfLen
	}
	if cfg.CrossSectionStep > 0 {
		pipeline.CrossSectionStep = cfg.CrossSectionStep
	}
}

// curationFunc codifies the expert review decisions: profiles listed as
// rejected in the config are dropped, and optionally every fallback
// profile is dropped wholesale.
func curationFunc(cfg Config) func(buhrig.Profile) bool {
	if !cfg.Curation.DropFallback && len(cfg.Curation.RejectedProfiles) == 0 {
		return nil
	}

	rejected := make(map[int]bool, len(cfg.Curation.RejectedProfiles))
	for _, id := range cfg.Curation.RejectedProfiles {
		rejected[id] = true
	}

	return func(profile buhrig.Profile) bool {
		if cfg.Curation.DropFallback && profile.Type == buhrig.FallbackOrthogonal {
			return false
		}
		return !rejected[profile.ProfileID]
	}
}
