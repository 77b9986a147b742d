package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense the same way Matrix wraps Dense: chainable
// methods operating on the raw backing slice, which is exported as DataP for
// fast-path loops in the solvers.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic("mismatch in dimension for provided data vector")
		}
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	v = Vector{
		V:     mat.NewVecDense(n, data),
		DataP: data,
	}
	return
}

func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) AtVec(i int) float64 { return v.DataP[i] }

func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.DataP[i] = val
	return v
}

func (v Vector) Copy() (r Vector) { // Does not change receiver
	r = NewVector(v.Len())
	copy(r.DataP, v.DataP)
	return
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] += val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	for _, val := range v.DataP {
		if val < 0 {
			val = -val
		}
		if val > max {
			max = val
		}
	}
	return
}
