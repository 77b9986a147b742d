package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	// Construction and hierarchy
	{
		g := NewGrid(8, 64)
		assert.Equal(t, 8., g.Delta)
		assert.InDelta(t, 4., g.X(0), 1.e-12)
		levels := g.Levels()
		assert.Equal(t, 4, len(levels))
		assert.Equal(t, 1, levels[3].N)
		assert.Equal(t, g.NLevels(), len(levels))
		assert.Panics(t, func() { NewGrid(12, 64) })
		assert.Panics(t, func() { NewGrid(8, 0) })
	}
	// Symmetry BC reflects the interior into the ghost layer
	{
		g := NewGrid(4, 4)
		f := NewScalarField(g)
		f.Foreach(func(i, j int, x, y float64) float64 {
			return float64(10*i + j)
		})
		assert.Equal(t, f.At(0, 0), f.M.At(0, 1))
		assert.Equal(t, f.At(3, 2), f.M.At(5, 3))
		assert.Equal(t, f.At(1, 0), f.M.At(2, 0))
		assert.Equal(t, f.At(1, 3), f.M.At(2, 5))
	}
	// Field statistics
	{
		g := NewGrid(2, 2)
		f := NewScalarField(g)
		f.Set(0, 0, 1)
		f.Set(0, 1, 1)
		f.Set(1, 0, 3)
		f.Set(1, 1, 3)
		min, max, mean, stddev := f.Stats()
		assert.Equal(t, 1., min)
		assert.Equal(t, 3., max)
		assert.Equal(t, 2., mean)
		assert.Equal(t, 1., stddev)
	}
	// Bilinear interpolation reproduces a linear field in the interior
	{
		g := NewGrid(16, 16)
		f := NewScalarField(g)
		f.Foreach(func(i, j int, x, y float64) float64 {
			return 2*x + 3*y
		})
		assert.InDelta(t, 2*5.+3*7., f.Interp(5, 7), 1.e-12)
		assert.InDelta(t, 2*8.25+3*4.75, f.Interp(8.25, 4.75), 1.e-12)
	}
}

func TestTransferOperators(t *testing.T) {
	var (
		fineG   = NewGrid(8, 8)
		coarseG = fineG.Coarsen()
	)
	// Restriction preserves the mean
	{
		fine := NewScalarField(fineG)
		fine.Foreach(func(i, j int, x, y float64) float64 {
			return math.Sin(x) + math.Cos(y)
		})
		coarse := NewScalarField(coarseG)
		Restrict(fine, coarse)
		_, _, fMean, _ := fine.Stats()
		_, _, cMean, _ := coarse.Stats()
		assert.InDelta(t, fMean, cMean, 1.e-12)
	}
	// Prolongation of a constant is the constant
	{
		coarse := NewScalarField(coarseG)
		coarse.Foreach(func(i, j int, x, y float64) float64 { return 7 })
		fine := NewScalarField(fineG)
		Prolong(coarse, fine)
		min, max, _, _ := fine.Stats()
		assert.InDelta(t, 7., min, 1.e-12)
		assert.InDelta(t, 7., max, 1.e-12)
	}
	// ProlongAdd accumulates
	{
		coarse := NewScalarField(coarseG)
		coarse.Foreach(func(i, j int, x, y float64) float64 { return 1 })
		fine := NewScalarField(fineG)
		fine.Foreach(func(i, j int, x, y float64) float64 { return 2 })
		ProlongAdd(coarse, fine)
		min, max, _, _ := fine.Stats()
		assert.InDelta(t, 3., min, 1.e-12)
		assert.InDelta(t, 3., max, 1.e-12)
	}
	// Grid size mismatch is a programmer error
	{
		assert.Panics(t, func() {
			Restrict(NewScalarField(fineG), NewScalarField(fineG))
		})
	}
}

func TestNoise(t *testing.T) {
	n := NewNoise(42)
	for i := 0; i < 1000; i++ {
		v := n.Sample()
		assert.True(t, v >= -1 && v < 1)
	}
	// Same seed, same sequence
	a, b := NewNoise(7), NewNoise(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Sample(), b.Sample())
	}
}
