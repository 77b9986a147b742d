package diffusion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comphy-lab/reactdiff/grid"
)

func TestUniformReaction(t *testing.T) {
	// A spatially uniform field with beta = -a and no source follows the
	// backward Euler update C1 = C0/(1 + a*dt) exactly, and diffusion
	// contributes nothing.
	var (
		g    = grid.NewGrid(16, 16)
		s    = NewSolver(1.e-8)
		C    = grid.NewScalarField(g)
		beta = grid.NewScalarField(g)
		a    = 0.5
		dt   = 0.25
		c0   = 3.
	)
	C.Foreach(func(i, j int, x, y float64) float64 { return c0 })
	beta.Foreach(func(i, j int, x, y float64) float64 { return -a })
	stats := s.Diffusion(C, dt, Coefficients{Beta: beta})
	want := c0 / (1 + a*dt)
	min, max, _, _ := C.Stats()
	assert.InDelta(t, want, min, 1.e-6)
	assert.InDelta(t, want, max, 1.e-6)
	assert.True(t, stats.Resa <= s.Tolerance)
}

func TestSourceEquilibrium(t *testing.T) {
	// With beta = -a and r = a*ceq, the equilibrium ceq is a fixed point of
	// the implicit step.
	var (
		g    = grid.NewGrid(32, 32)
		s    = NewSolver(1.e-6)
		C    = grid.NewScalarField(g)
		r    = grid.NewScalarField(g)
		beta = grid.NewScalarField(g)
		a    = 2.
		ceq  = 4.5
	)
	C.Foreach(func(i, j int, x, y float64) float64 { return ceq })
	r.Foreach(func(i, j int, x, y float64) float64 { return a * ceq })
	beta.Foreach(func(i, j int, x, y float64) float64 { return -a })
	for step := 0; step < 10; step++ {
		s.Diffusion(C, 1., Coefficients{R: r, Beta: beta})
	}
	min, max, _, _ := C.Stats()
	assert.InDelta(t, ceq, min, 1.e-4)
	assert.InDelta(t, ceq, max, 1.e-4)
}

// neumannModeDecay returns the exact backward Euler decay factor of the
// discrete cosine eigenmode cos(k*pi*(j+0.5)/N) of the five point Laplacian
// with reflected ghosts.
func neumannModeDecay(g *grid.Grid, k int, D, dt float64) float64 {
	theta := float64(k) * math.Pi / float64(g.N)
	mu := (2 - 2*math.Cos(theta)) / (g.Delta * g.Delta)
	return 1 / (1 + dt*D*mu)
}

func TestDiffusionModeDecay(t *testing.T) {
	// Pure diffusion of a Neumann-compatible cosine mode: the implicit
	// solve must reproduce the exact discrete decay factor.
	var (
		g    = grid.NewGrid(32, 32)
		s    = NewSolver(1.e-10)
		C    = grid.NewScalarField(g)
		D    = 8.
		dt   = 0.5
		k    = 3
		amp0 = 1.
	)
	mode := func(j int) float64 {
		return math.Cos(float64(k) * math.Pi * (float64(j) + 0.5) / float64(g.N))
	}
	C.Foreach(func(i, j int, x, y float64) float64 {
		return amp0 * mode(j)
	})
	stats := s.Diffusion(C, dt, Coefficients{D: D})
	assert.True(t, stats.I >= 1)
	assert.True(t, stats.Resa <= s.Tolerance)

	decay := neumannModeDecay(g, k, D, dt)
	for j := 0; j < g.N; j++ {
		assert.InDelta(t, amp0*decay*mode(j), C.At(g.N/2, j), 1.e-6)
	}
}

func TestBackendsAgree(t *testing.T) {
	// The multigrid cycle and the assembled sparse operator discretize the
	// same problem; their converged solutions must match.
	var (
		g     = grid.NewGrid(16, 16)
		mg    = NewSolver(1.e-8)
		sp    = NewSolver(1.e-8)
		noise = grid.NewNoise(3)
		C0    = grid.NewScalarField(g)
		r     = grid.NewScalarField(g)
		beta  = grid.NewScalarField(g)
		dt    = 0.1
	)
	sp.Backend = Sparse
	C0.Foreach(func(i, j int, x, y float64) float64 { return 1 + 0.1*noise.Sample() })
	r.Foreach(func(i, j int, x, y float64) float64 { return 0.5 * noise.Sample() })
	beta.Foreach(func(i, j int, x, y float64) float64 { return -1 + 0.2*noise.Sample() })

	Cmg := C0.Copy()
	Csp := C0.Copy()
	statsMG := mg.Diffusion(Cmg, dt, Coefficients{D: 2, R: r, Beta: beta})
	statsSP := sp.Diffusion(Csp, dt, Coefficients{D: 2, R: r, Beta: beta})
	assert.True(t, statsMG.Resa <= mg.Tolerance)
	assert.True(t, statsSP.Resa <= sp.Tolerance)
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			assert.InDelta(t, Csp.At(i, j), Cmg.At(i, j), 1.e-6)
		}
	}
}

func TestBackendNames(t *testing.T) {
	b, err := NewBackend("sparse")
	assert.NoError(t, err)
	assert.Equal(t, Sparse, b)
	b, err = NewBackend("multigrid")
	assert.NoError(t, err)
	assert.Equal(t, Multigrid, b)
	_, err = NewBackend("direct")
	assert.Error(t, err)
}
