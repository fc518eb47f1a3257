package featureio

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	buhrig "github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1"
)

// WriteKeyPointsCSV writes the flattened, attribute-only key point table.
func WriteKeyPointsCSV(path string, points []buhrig.KeyPoint) error {
	rows := [][]string{{"profile_id", "point_id", "point_name", "x_utm", "y_utm", "z_m"}}
	for _, point := range points {
		rows = append(rows, []string{
			strconv.Itoa(point.ProfileID),
			strconv.Itoa(point.PointID),
			point.Name,
			formatFloat(point.Point.X()),
			formatFloat(point.Point.Y()),
			formatFloat(point.Z),
		})
	}

	return writeCSV(path, rows)
}

// WriteMetricsCSV writes the Bührig metrics table, one row per complete
// profile. Undefined aspect ratios become empty fields.
func WriteMetricsCSV(path string, metrics []buhrig.ProfileMetrics) error {
	rows := [][]string{{
		"profile_id",
		"Wmax_m", "W1_m", "W2_m",
		"Dmax_m", "H1_m", "H2_m",
		"B1_deg", "B2_deg", "SWmax_deg",
		"Aspect_ratio_W_D",
	}}

	for _, m := range metrics {
		rows = append(rows, []string{
			strconv.Itoa(m.ProfileID),
			formatFloat(m.Wmax),
			formatFloat(m.W1),
			formatFloat(m.W2),
			formatFloat(m.Dmax),
			formatFloat(m.H1),
			formatFloat(m.H2),
			formatFloat(m.B1),
			formatFloat(m.B2),
			formatFloat(m.SWmax),
			formatFloat(m.AspectRatio),
		})
	}

	return writeCSV(path, rows)
}

// WriteCrossSectionsCSV writes the terrain samples along every profile,
// one file for all profiles, for expert review of wall shape.
func WriteCrossSectionsCSV(path string, samples []buhrig.CrossSectionSample) error {
	rows := [][]string{{"profile_id", "distance_m", "x_utm", "y_utm", "z_m"}}
	for _, sample := range samples {
		rows = append(rows, []string{
			strconv.Itoa(sample.ProfileID),
			formatFloat(sample.Distance),
			formatFloat(sample.Point.X()),
			formatFloat(sample.Point.Y()),
			formatFloat(sample.Z),
		})
	}

	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("featureio: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("featureio: %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("featureio: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
