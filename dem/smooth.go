package dem

import (
	"math"
)

// Kernel creates a normalized Gaussian smoothing kernel for a grid with
// the given cell size. stdDev is in map units (meters); the kernel extends
// 3.5 standard deviations out, everything beyond that is zero anyway.
// A non-positive stdDev yields the identity kernel.
func Kernel(stdDev, cellSize float64) []float64 {
	if stdDev <= 0 {
		return []float64{1.0}
	}

	sd := stdDev / cellSize
	size := int(math.Ceil(sd * 3.5))
	kernel := make([]float64, 2*size+1)

	sum := 0.0
	for i := 0; i <= size; i++ {
		x := float64(i) / sd
		v := math.Exp(-x * x / 2)
		kernel[size-i] = v
		kernel[size+i] = v
	}
	for _, v := range kernel {
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// Smooth applies the kernel vertically and then horizontally, returning a
// new grid and leaving the source untouched. Windows are clamped at the
// grid edges. Missing cells stay missing and are excluded from their
// neighbors' windows, with the remaining weights renormalized, so the
// smoothed surface never bleeds nodata values into valid terrain.
//
// Smoothing is only meant for the validation cross-sections; metric
// elevations always come from the raw grid.
func Smooth(g *Grid, kernel []float64) *Grid {
	size := (len(kernel) - 1) / 2
	if size == 0 {
		return g.Clone()
	}

	vertical := g.Clone()
	smoothPass(g, vertical, kernel, size, true)

	out := vertical.Clone()
	smoothPass(vertical, out, kernel, size, false)

	return out
}

func smoothPass(src, dst *Grid, kernel []float64, size int, vertical bool) {
	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			if !src.valid(row, col) {
				dst.Data[row][col] = src.Data[row][col]
				continue
			}

			var sum, weight float64
			for k := -size; k <= size; k++ {
				r, c := row, col
				if vertical {
					r = clamp(row+k, src.Height)
				} else {
					c = clamp(col+k, src.Width)
				}

				if !src.valid(r, c) {
					continue
				}

				sum += src.Data[r][c] * kernel[k+size]
				weight += kernel[k+size]
			}

			if weight > 0 {
				dst.Data[row][col] = sum / weight
			}
		}
	}
}
