// Package dem provides the bathymetric elevation surface: a regular grid in
// a projected metric coordinate system with nearest-cell point sampling.
package dem

import (
	"math"

	"github.com/paulmach/go.geo"
)

// A Grid is a single-band regular elevation raster. Rows run north to
// south, so Data[0] is the northernmost row. Values are signed elevations,
// negative below the datum.
type Grid struct {
	Width  int
	Height int
	Data   [][]float64 // [row][col]

	left     float64 // x of the outer west edge
	top      float64 // y of the outer north edge
	cellSize float64

	noData    float64
	hasNoData bool
}

// NewGrid allocates a zero-filled grid with the given geotransform. left
// and top locate the outer corner of cell (0, 0).
func NewGrid(width, height int, left, top, cellSize float64) *Grid {
	data := make([][]float64, height)
	for row := range data {
		data[row] = make([]float64, width)
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Data:     data,
		left:     left,
		top:      top,
		cellSize: cellSize,
	}
}

// SetNoData declares v as the missing-value marker for this grid.
func (g *Grid) SetNoData(v float64) {
	g.noData = v
	g.hasNoData = true
}

// NoData returns the missing-value marker, if one is declared.
func (g *Grid) NoData() (float64, bool) {
	return g.noData, g.hasNoData
}

// CellSize returns the cell edge length in map units.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Bound returns the outer bounds of the grid.
func (g *Grid) Bound() *geo.Bound {
	return geo.NewBound(
		g.left,
		g.left+float64(g.Width)*g.cellSize,
		g.top-float64(g.Height)*g.cellSize,
		g.top,
	)
}

// Index returns the row and column of the cell containing the point, or
// false when the point is off the grid.
func (g *Grid) Index(point *geo.Point) (row, col int, ok bool) {
	col = int(math.Floor((point.X() - g.left) / g.cellSize))
	row = int(math.Floor((g.top - point.Y()) / g.cellSize))

	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return 0, 0, false
	}

	return row, col, true
}

// ElevationAt returns the value of the cell containing the point. This is
// a nearest-cell lookup; no interpolation between cells is performed. The
// bool is false off the grid and on missing cells.
func (g *Grid) ElevationAt(point *geo.Point) (float64, bool) {
	row, col, ok := g.Index(point)
	if !ok {
		return 0, false
	}

	z := g.Data[row][col]
	if g.hasNoData && z == g.noData {
		return 0, false
	}
	if math.IsNaN(z) {
		return 0, false
	}

	return z, true
}

// valid reports whether the cell holds a usable value.
func (g *Grid) valid(row, col int) bool {
	z := g.Data[row][col]
	if g.hasNoData && z == g.noData {
		return false
	}
	return !math.IsNaN(z)
}

// Clone returns a deep copy sharing no data with the receiver.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Width, g.Height, g.left, g.top, g.cellSize)
	if g.hasNoData {
		clone.SetNoData(g.noData)
	}
	for row := range g.Data {
		copy(clone.Data[row], g.Data[row])
	}
	return clone
}
