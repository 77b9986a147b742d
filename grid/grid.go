package grid

import (
	"fmt"
	"math"

	"github.com/comphy-lab/reactdiff/utils"
)

// Grid is a square, uniform, cell centered Cartesian grid. N is the cell
// count per side and must be a power of two so the grid can be coarsened
// down to a single cell for multigrid cycling.
type Grid struct {
	N     int
	Size  float64
	Delta float64
}

func NewGrid(N int, size float64) (g *Grid) {
	if N < 1 || N&(N-1) != 0 {
		err := fmt.Errorf("grid dimension must be a power of two, got %d", N)
		panic(err)
	}
	if size <= 0 {
		err := fmt.Errorf("domain size must be positive, got %g", size)
		panic(err)
	}
	g = &Grid{
		N:     N,
		Size:  size,
		Delta: size / float64(N),
	}
	return
}

// X is the cell center coordinate for interior index i in 0..N-1.
func (g *Grid) X(i int) float64 {
	return (float64(i) + 0.5) * g.Delta
}

// Coarsen returns the next coarser grid covering the same domain.
func (g *Grid) Coarsen() *Grid {
	if g.N == 1 {
		return nil
	}
	return NewGrid(g.N/2, g.Size)
}

// Levels enumerates the multigrid hierarchy from finest to coarsest.
func (g *Grid) Levels() (levels []*Grid) {
	for gl := g; gl != nil; gl = gl.Coarsen() {
		levels = append(levels, gl)
	}
	return
}

// NLevels is the depth of the hierarchy, log2(N)+1.
func (g *Grid) NLevels() int {
	return int(math.Round(math.Log2(float64(g.N)))) + 1
}

// ScalarField is a cell centered scalar over a Grid, stored with one ghost
// layer per side. The ghost layer carries the boundary condition: the
// default (and only) BC here is symmetry, i.e. homogeneous Neumann, matching
// the box boundaries of the reaction-diffusion cases.
type ScalarField struct {
	G *Grid
	M utils.Matrix // (N+2) x (N+2), interior at [1..N][1..N]
}

func NewScalarField(g *Grid) (f *ScalarField) {
	f = &ScalarField{
		G: g,
		M: utils.NewMatrix(g.N+2, g.N+2),
	}
	return
}

// At reads interior cell (i,j), i the row index (y), j the column (x).
func (f *ScalarField) At(i, j int) float64 {
	return f.M.At(i+1, j+1)
}

func (f *ScalarField) Set(i, j int, val float64) {
	f.M.Set(i+1, j+1, val)
}

// Foreach visits every interior cell with its center coordinates, the
// analog of a foreach() traversal over the case fields.
func (f *ScalarField) Foreach(fn func(i, j int, x, y float64) float64) {
	var (
		g = f.G
	)
	for i := 0; i < g.N; i++ {
		y := g.X(i)
		for j := 0; j < g.N; j++ {
			x := g.X(j)
			f.Set(i, j, fn(i, j, x, y))
		}
	}
	f.ApplyBC()
}

// ApplyBC refreshes the ghost layer by reflecting the adjacent interior
// cells, giving a zero normal gradient at all four walls.
func (f *ScalarField) ApplyBC() {
	var (
		n = f.G.N
		m = f.M
	)
	for j := 1; j <= n; j++ {
		m.Set(0, j, m.At(1, j))
		m.Set(n+1, j, m.At(n, j))
	}
	for i := 0; i <= n+1; i++ {
		m.Set(i, 0, m.At(i, 1))
		m.Set(i, n+1, m.At(i, n))
	}
}

func (f *ScalarField) Copy() (r *ScalarField) {
	r = &ScalarField{
		G: f.G,
		M: f.M.Copy(),
	}
	return
}

// Assign copies the values of A into f. Grids must match.
func (f *ScalarField) Assign(A *ScalarField) {
	if f.G.N != A.G.N {
		panic("grid dimensions differ in field assignment")
	}
	copy(f.M.DataP, A.M.DataP)
}

// Interior returns a dense copy of the N x N interior.
func (f *ScalarField) Interior() (R utils.Matrix) {
	var (
		n = f.G.N
	)
	R = utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			R.Set(i, j, f.At(i, j))
		}
	}
	return
}

// Stats returns interior min, max, mean and standard deviation, used to
// normalize raster output.
func (f *ScalarField) Stats() (min, max, mean, stddev float64) {
	var (
		n   = f.G.N
		sum float64
	)
	min, max = f.At(0, 0), f.At(0, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := f.At(i, j)
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	mean = sum / float64(n*n)
	var ss float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := f.At(i, j) - mean
			ss += d * d
		}
	}
	stddev = math.Sqrt(ss / float64(n*n))
	return
}

// Interp evaluates the field at physical point (x,y) by bilinear
// interpolation between cell centers. The ghost layer extends the stencil
// past the walls so any point inside the domain is valid.
func (f *ScalarField) Interp(x, y float64) float64 {
	var (
		g  = f.G
		fi = y/g.Delta - 0.5
		fj = x/g.Delta - 0.5
	)
	i := int(math.Floor(fi))
	j := int(math.Floor(fj))
	if i < -1 {
		i = -1
	}
	if i > g.N-1 {
		i = g.N - 1
	}
	if j < -1 {
		j = -1
	}
	if j > g.N-1 {
		j = g.N - 1
	}
	wi := fi - float64(i)
	wj := fj - float64(j)
	// clamp weights so points in the ghost half-cells stay bounded
	if wi < 0 {
		wi = 0
	}
	if wi > 1 {
		wi = 1
	}
	if wj < 0 {
		wj = 0
	}
	if wj > 1 {
		wj = 1
	}
	m := f.M
	v00 := m.At(i+1, j+1)
	v01 := m.At(i+1, j+2)
	v10 := m.At(i+2, j+1)
	v11 := m.At(i+2, j+2)
	return v00*(1-wi)*(1-wj) + v01*(1-wi)*wj + v10*wi*(1-wj) + v11*wi*wj
}
