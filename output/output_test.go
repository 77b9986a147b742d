package output

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comphy-lab/reactdiff/grid"
)

func testField(n int, size float64) *grid.ScalarField {
	g := grid.NewGrid(n, size)
	f := grid.NewScalarField(g)
	f.Foreach(func(i, j int, x, y float64) float64 {
		return x - y
	})
	return f
}

func TestColorMap(t *testing.T) {
	blue := ColorMap(0)
	mid := ColorMap(0.5)
	red := ColorMap(1)
	assert.Equal(t, uint8(255), blue.B)
	assert.True(t, blue.R < mid.R)
	assert.Equal(t, uint8(255), mid.R)
	assert.Equal(t, uint8(255), mid.G)
	assert.Equal(t, uint8(255), mid.B)
	assert.Equal(t, uint8(255), red.R)
	assert.True(t, red.B < mid.B)
	// out of range values clamp
	assert.Equal(t, blue, ColorMap(-1))
	assert.Equal(t, red, ColorMap(2))
}

func TestRender(t *testing.T) {
	f := testField(16, 16)
	img := Render(f, Options{N: 50, Linear: true, Spread: 2})
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
	// default size follows the grid
	img = Render(f, Options{})
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	var (
		f    = testField(16, 16)
		name = filepath.Join(t.TempDir(), "field.png")
	)
	assert.NoError(t, WritePNG(f, name, Options{N: 40, Linear: true, Spread: 2}))
	file, err := os.Open(name)
	assert.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	assert.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestAnimation(t *testing.T) {
	var (
		f    = testField(16, 16)
		name = filepath.Join(t.TempDir(), "f.avi")
	)
	a, err := NewAnimation(name, 40, 40, 25)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.NoError(t, a.AddFrame(Render(f, Options{N: 40})))
	}
	assert.Equal(t, 3, a.Frames())
	assert.NoError(t, a.Close())
	fi, err := os.Stat(name)
	assert.NoError(t, err)
	assert.True(t, fi.Size() > 0)
}

func TestIterationChart(t *testing.T) {
	var (
		h    = History{}
		name = filepath.Join(t.TempDir(), "stats.png")
	)
	// too little history is an error, not a broken image
	assert.Error(t, h.WriteIterationChart(name))
	for i := 1; i <= 20; i++ {
		h.Append(i, float64(i), 1, 3+i%2, 4)
	}
	assert.Equal(t, 20, h.Len())
	assert.NoError(t, h.WriteIterationChart(name))
	fi, err := os.Stat(name)
	assert.NoError(t, err)
	assert.True(t, fi.Size() > 0)
}
