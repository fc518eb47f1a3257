// Package featureio reads the vector inputs and writes every output
// dataset of the pipeline, as GeoJSON feature collections plus flattened
// CSV tables. All geometries are expected in the same projected metric
// coordinate system as the elevation surface.
package featureio

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"

	buhrig "github.com/MAVIVEROSVELASQUEZ/SAC-Buhrig-Metrics-V1"
)

// SideAttribute is the edge feature property naming the canyon side,
// either "Left" or "Right".
const SideAttribute = "LeftRight"

var (
	// ErrThalwegFeatureCount is returned when the thalweg dataset does not
	// contain exactly one feature.
	ErrThalwegFeatureCount = errors.New("featureio: thalweg must contain exactly one feature")

	// ErrThalwegGeometry is returned when the thalweg feature is not a
	// LineString with at least two vertices.
	ErrThalwegGeometry = errors.New("featureio: thalweg feature must be a LineString")

	// ErrMissingSideAttribute is returned when an edge feature carries no
	// usable side property.
	ErrMissingSideAttribute = errors.New(`featureio: edge feature missing "LeftRight" property`)
)

// ReadThalweg loads the thalweg dataset, enforcing the single-polyline
// input contract.
func ReadThalweg(path string) (*geo.Path, error) {
	collection, err := readCollection(path)
	if err != nil {
		return nil, err
	}

	if len(collection.Features) != 1 {
		return nil, fmt.Errorf("%w, got %d (%s)", ErrThalwegFeatureCount, len(collection.Features), path)
	}

	g := collection.Features[0].Geometry
	if g == nil || !g.IsLineString() || len(g.LineString) < 2 {
		return nil, fmt.Errorf("%w (%s)", ErrThalwegGeometry, path)
	}

	return pathFromCoords(g.LineString), nil
}

// ReadEdges loads the rim delineations, splitting features into the left
// and right sides by the LeftRight property. LineString, MultiLineString
// and Polygon geometries are accepted; polygon rings contribute their
// outlines. A side may end up empty, which downstream handles with
// fallback profiles.
func ReadEdges(path string) (*buhrig.EdgeSet, error) {
	collection, err := readCollection(path)
	if err != nil {
		return nil, err
	}

	set := &buhrig.EdgeSet{}
	for i, feature := range collection.Features {
		side, err := feature.PropertyString(SideAttribute)
		if err != nil {
			return nil, fmt.Errorf("%w (feature %d, %s)", ErrMissingSideAttribute, i, path)
		}

		parts, err := linework(feature.Geometry)
		if err != nil {
			return nil, fmt.Errorf("featureio: feature %d (%s): %w", i, path, err)
		}

		switch side {
		case "Left":
			set.Left = append(set.Left, parts...)
		case "Right":
			set.Right = append(set.Right, parts...)
		default:
			return nil, fmt.Errorf("featureio: unknown edge side %q (feature %d, %s)", side, i, path)
		}
	}

	return set, nil
}

func readCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("featureio: %w", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("featureio: %s: %w", path, err)
	}

	return collection, nil
}

func linework(g *geojson.Geometry) ([]*geo.Path, error) {
	if g == nil {
		return nil, errors.New("no geometry")
	}

	switch {
	case g.IsLineString():
		return []*geo.Path{pathFromCoords(g.LineString)}, nil
	case g.IsMultiLineString():
		paths := make([]*geo.Path, 0, len(g.MultiLineString))
		for _, coords := range g.MultiLineString {
			paths = append(paths, pathFromCoords(coords))
		}
		return paths, nil
	case g.IsPolygon():
		paths := make([]*geo.Path, 0, len(g.Polygon))
		for _, ring := range g.Polygon {
			paths = append(paths, pathFromCoords(ring))
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("unsupported edge geometry %q", g.Type)
	}
}

func pathFromCoords(coords [][]float64) *geo.Path {
	path := geo.NewPath()
	for _, c := range coords {
		path.Push(geo.NewPoint(c[0], c[1]))
	}
	return path
}
