package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration: input datasets, output directory,
// parameter overrides and the curation decisions fed back from expert
// review of the fallback profiles.
type Config struct {
	DEM       string `yaml:"dem"`
	Thalweg   string `yaml:"thalweg"`
	Edges     string `yaml:"edges"`
	OutputDir string `yaml:"output_dir"`

	// Zero values fall back to the pipeline defaults.
	StepDistance       float64 `yaml:"step_distance_m"`
	TangentDelta       float64 `yaml:"tangent_delta_m"`
	ProvisionalHalfLen float64 `yaml:"provisional_half_length_m"`
	EdgeMargin         float64 `yaml:"edge_margin_m"`
	FallbackHalfLen    float64 `yaml:"fallback_half_length_m"`
	CrossSectionStep   float64 `yaml:"cross_section_step_m"`

	// SmoothingStdDev smooths a copy of the DEM for the validation
	// cross-sections only; zero disables smoothing.
	SmoothingStdDev float64 `yaml:"smoothing_std_dev_m"`

	Curation struct {
		DropFallback     bool  `yaml:"drop_fallback"`
		RejectedProfiles []int `yaml:"rejected_profiles"`
	} `yaml:"curation"`
}

// NewConfig creates a new config object from the given filename.
func NewConfig(filename string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", filename, err)
	}

	if cfg.DEM == "" || cfg.Thalweg == "" || cfg.Edges == "" {
		return cfg, errors.New("config must set dem, thalweg and edges paths")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg, nil
}
