package utils

import "time"

// POW is an integer power, much faster than math.Pow for small exponents.
func POW(x float64, p int) (y float64) {
	if p < 0 {
		return 1. / POW(x, -p)
	}
	y = 1.
	for i := 0; i < p; i++ {
		y *= x
	}
	return
}

func ConstArray(n int, val float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = val
	}
	return
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}
