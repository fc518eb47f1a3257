package featureio

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"

	buhrig "github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1"
)

// WriteSamplePoints writes the thalweg sample points with their ids and
// arc-length distances.
func WriteSamplePoints(path string, samples []buhrig.SamplePoint) error {
	collection := geojson.NewFeatureCollection()
	for _, sample := range samples {
		feature := geojson.NewPointFeature([]float64{sample.Point.X(), sample.Point.Y()})
		feature.SetProperty("profile_id", sample.ProfileID)
		feature.SetProperty("distance_m", sample.Distance)
		collection.AddFeature(feature)
	}

	return writeCollection(path, collection)
}

// WriteProfiles writes the transversal profiles with their construction
// type, so fallback profiles can be reviewed and curated externally.
func WriteProfiles(path string, profiles []buhrig.Profile) error {
	collection := geojson.NewFeatureCollection()
	for _, profile := range profiles {
		a, b := profile.Line.A(), profile.Line.B()
		feature := geojson.NewLineStringFeature([][]float64{
			{a.X(), a.Y()},
			{b.X(), b.Y()},
		})
		feature.SetProperty("profile_id", profile.ProfileID)
		feature.SetProperty("profile_type", string(profile.Type))
		collection.AddFeature(feature)
	}

	return writeCollection(path, collection)
}

// WriteKeyPoints writes a key point dataset with the full attribute set,
// geometry included. It serves both the P1–P3 and the integrated P1–P4
// exports.
func WriteKeyPoints(path string, points []buhrig.KeyPoint) error {
	collection := geojson.NewFeatureCollection()
	for _, point := range points {
		feature := geojson.NewPointFeature([]float64{point.Point.X(), point.Point.Y()})
		feature.SetProperty("profile_id", point.ProfileID)
		feature.SetProperty("point_id", point.PointID)
		feature.SetProperty("point_name", point.Name)
		feature.SetProperty("x_utm", point.Point.X())
		feature.SetProperty("y_utm", point.Point.Y())
		feature.SetProperty("z_m", point.Z)
		collection.AddFeature(feature)
	}

	return writeCollection(path, collection)
}

func writeCollection(path string, collection *geojson.FeatureCollection) error {
	data, err := collection.MarshalJSON()
	if err != nil {
		return fmt.Errorf("featureio: %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("featureio: %w", err)
	}
	return nil
}
