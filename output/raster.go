// Package output renders scalar fields to rasters, animations and charts.
// The raster path follows the semantics of the original movie/final events:
// resample the field to an n x n image, normalize the color scale to the
// field mean +/- spread standard deviations, and map through a diverging
// colormap so pattern structure reads at a glance.
package output

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/comphy-lab/reactdiff/grid"
)

type Options struct {
	N      int     // image edge in pixels; 0 means the grid resolution
	Linear bool    // bilinear resampling instead of nearest cell
	Spread float64 // color range = mean +/- Spread*stddev; 0 means min..max
}

// ColorMap maps a normalized value in [0,1] to a blue-white-red diverging
// ramp, 0.5 at the field mean.
func ColorMap(v float64) color.RGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	var r, g, b float64
	if v < 0.5 {
		t := 2 * v
		r, g, b = t, t, 1
	} else {
		t := 2 * (v - 0.5)
		r, g, b = 1, 1-t, 1-t
	}
	return color.RGBA{R: uint8(255*r + 0.5), G: uint8(255*g + 0.5), B: uint8(255*b + 0.5), A: 255}
}

// Render resamples the field into an RGBA image. Row zero of the image is
// the top of the domain.
func Render(f *grid.ScalarField, opt Options) *image.RGBA {
	var (
		g = f.G
		n = opt.N
	)
	if n <= 0 {
		n = g.N
	}
	zmin, zmax := colorRange(f, opt.Spread)
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	scale := g.Size / float64(n)
	for p := 0; p < n; p++ {
		y := g.Size - (float64(p)+0.5)*scale
		for q := 0; q < n; q++ {
			x := (float64(q) + 0.5) * scale
			var v float64
			if opt.Linear {
				v = f.Interp(x, y)
			} else {
				v = f.At(nearestCell(g, y), nearestCell(g, x))
			}
			var t float64
			if zmax > zmin {
				t = (v - zmin) / (zmax - zmin)
			} else {
				t = 0.5
			}
			img.SetRGBA(q, p, ColorMap(t))
		}
	}
	return img
}

func colorRange(f *grid.ScalarField, spread float64) (zmin, zmax float64) {
	min, max, mean, stddev := f.Stats()
	if spread > 0 && stddev > 0 {
		return mean - spread*stddev, mean + spread*stddev
	}
	return min, max
}

func nearestCell(g *grid.Grid, x float64) (i int) {
	i = int(x / g.Delta)
	if i < 0 {
		i = 0
	}
	if i > g.N-1 {
		i = g.N - 1
	}
	return
}

// WritePNG renders the field and writes it to file.
func WritePNG(f *grid.ScalarField, fileName string, opt Options) (err error) {
	img := Render(f, opt)
	file, err := os.Create(fileName)
	if err != nil {
		return
	}
	defer file.Close()
	err = png.Encode(file, img)
	return
}
