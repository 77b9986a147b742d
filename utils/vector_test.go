package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Construction with and without backing data
	{
		V := NewVector(3, []float64{1, 2, 3})
		assert.Equal(t, 3, V.Len())
		assert.Equal(t, 2., V.AtVec(1))
		assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
		Z := NewVector(2)
		assert.Equal(t, []float64{0, 0}, Z.DataP)
	}
	// Chained elementwise operations
	{
		V := NewVector(3, []float64{1, 2, 3})
		A := NewVector(3, []float64{1, 1, 1})
		V.Scale(2).Subtract(A)
		assert.Equal(t, []float64{1, 3, 5}, V.DataP)
		V.Add(A).Apply(math.Sqrt)
		assert.InDeltaSlice(t, []float64{math.Sqrt2, 2, math.Sqrt(6)}, V.DataP, 1.e-12)
		V.Set(0, -4)
		assert.Equal(t, -4., V.AtVec(0))
	}
	// Reductions
	{
		V := NewVector(4, []float64{-3, 1, 2, 0})
		assert.Equal(t, -3., V.Min())
		assert.Equal(t, 2., V.Max())
		assert.Equal(t, 3., V.MaxAbs())
	}
	// Copy does not alias
	{
		V := NewVector(2, []float64{1, 2})
		A := V.Copy()
		A.Scale(10)
		assert.Equal(t, []float64{1, 2}, V.DataP)
	}
}
