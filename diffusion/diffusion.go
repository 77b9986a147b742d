// Package diffusion solves one backward-Euler step of the reaction-diffusion
// equation
//
//	dC/dt = div(D grad C) + beta*C + r
//
// by recasting it as the Poisson-Helmholtz problem
//
//	div(D grad C) + lambda*C = b,  lambda = beta - 1/dt,  b = -C/dt - r
//
// and cycling a cell centered multigrid solver on the grid hierarchy until
// the max-norm residual drops below tolerance.
package diffusion

import (
	"fmt"

	"github.com/comphy-lab/reactdiff/grid"
)

const (
	DefaultTolerance = 1.e-3
	DefaultNRelax    = 4
	MaxCycles        = 100
)

// Stats reports the convergence of one implicit solve, the analog of the
// per-solve iteration statistics the cases print in their progress lines.
type Stats struct {
	I          int     // multigrid cycles (or sparse sweeps) taken
	Resb, Resa float64 // max-norm residual before and after
	NRelax     int     // relaxation sweeps per level per cycle
}

func (s Stats) String() string {
	return fmt.Sprintf("cycles: %d, residual %g -> %g", s.I, s.Resb, s.Resa)
}

// Coefficients carries the optional terms of a solve. A zero R or Beta is
// treated as absent, D defaults to 1 when left zero, matching the original
// call sites which omit all three in the simplest case.
type Coefficients struct {
	D       float64           // isotropic diffusion coefficient
	R, Beta *grid.ScalarField // source term and linear reaction coefficient
}

type Backend uint8

const (
	Multigrid Backend = iota
	Sparse
)

var backendNames = []string{"multigrid", "sparse"}

func (b Backend) String() string { return backendNames[b] }

func NewBackend(name string) (Backend, error) {
	for i, n := range backendNames {
		if n == name {
			return Backend(i), nil
		}
	}
	return Multigrid, fmt.Errorf("unknown solver backend %q", name)
}

// Solver holds tolerances and per-grid workspace reused across steps.
type Solver struct {
	Tolerance float64
	NRelax    int
	Backend   Backend

	levels   []*grid.Grid
	dx, res  []*grid.ScalarField
	lam      []*grid.ScalarField
	b, resid *grid.ScalarField
}

func NewSolver(tolerance float64) (s *Solver) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	s = &Solver{
		Tolerance: tolerance,
		NRelax:    DefaultNRelax,
	}
	return
}

// Diffusion advances C by one implicit step of length dt. C is both the
// initial condition and the converged result (warm started).
func (s *Solver) Diffusion(C *grid.ScalarField, dt float64, coef Coefficients) (stats Stats) {
	if dt <= 0 {
		panic(fmt.Errorf("non-positive timestep %g in diffusion solve", dt))
	}
	if coef.D == 0 {
		coef.D = 1
	}
	s.prepare(C.G)

	var (
		g      = C.G
		lambda = s.lam[0]
		b      = s.b
		idt    = 1. / dt
	)
	// lambda = beta - 1/dt, b = -C/dt - r
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			l := -idt
			if coef.Beta != nil {
				l += coef.Beta.At(i, j)
			}
			lambda.Set(i, j, l)
			rhs := -C.At(i, j) * idt
			if coef.R != nil {
				rhs -= coef.R.At(i, j)
			}
			b.Set(i, j, rhs)
		}
	}
	lambda.ApplyBC()
	b.ApplyBC()

	switch s.Backend {
	case Sparse:
		stats = s.solveSparse(C, b, lambda, coef.D)
	case Multigrid:
		fallthrough
	default:
		stats = s.solveMG(C, b, lambda, coef.D)
	}
	return
}

// prepare (re)builds the level workspace when the target grid changes.
func (s *Solver) prepare(g *grid.Grid) {
	if len(s.levels) != 0 && s.levels[0].N == g.N && s.levels[0].Size == g.Size {
		return
	}
	s.levels = g.Levels()
	nl := len(s.levels)
	s.dx = make([]*grid.ScalarField, nl)
	s.res = make([]*grid.ScalarField, nl)
	s.lam = make([]*grid.ScalarField, nl)
	for l, gl := range s.levels {
		s.dx[l] = grid.NewScalarField(gl)
		s.res[l] = grid.NewScalarField(gl)
		s.lam[l] = grid.NewScalarField(gl)
	}
	s.b = grid.NewScalarField(g)
	s.resid = grid.NewScalarField(g)
}

// applyOperator evaluates div(D grad x) + lambda*x into out on the grid of
// x, using the ghost layer for the wall stencils.
func applyOperator(x, lambda, out *grid.ScalarField, D float64) {
	var (
		g   = x.G
		m   = x.M
		idd = D / (g.Delta * g.Delta)
	)
	x.ApplyBC()
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			lap := m.At(i, j+1) + m.At(i+2, j+1) + m.At(i+1, j) + m.At(i+1, j+2) - 4*m.At(i+1, j+1)
			out.Set(i, j, idd*lap+lambda.At(i, j)*x.At(i, j))
		}
	}
}

// residual computes res = b - A(x) and returns the max-norm.
func residual(x, b, lambda, res *grid.ScalarField, D float64) (norm float64) {
	applyOperator(x, lambda, res, D)
	var (
		g = x.G
	)
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			r := b.At(i, j) - res.At(i, j)
			res.Set(i, j, r)
			if r < 0 {
				r = -r
			}
			if r > norm {
				norm = r
			}
		}
	}
	res.ApplyBC()
	return
}

// relax runs in-place sweeps of the pointwise smoother for A(x) = b.
// Sweeping in place gives Gauss-Seidel ordering, which the hierarchy only
// needs to damp the high frequency error at each level.
func relax(x, b, lambda *grid.ScalarField, D float64, sweeps int) {
	var (
		g   = x.G
		m   = x.M
		idd = D / (g.Delta * g.Delta)
	)
	for sweep := 0; sweep < sweeps; sweep++ {
		x.ApplyBC()
		for i := 0; i < g.N; i++ {
			for j := 0; j < g.N; j++ {
				nb := m.At(i, j+1) + m.At(i+2, j+1) + m.At(i+1, j) + m.At(i+1, j+2)
				diag := lambda.At(i, j) - 4*idd
				x.Set(i, j, (b.At(i, j)-idd*nb)/diag)
			}
		}
	}
	x.ApplyBC()
}

// solveMG runs multigrid cycles until the residual meets tolerance. Each
// cycle restricts the fine residual down the full hierarchy, then sweeps
// back up, relaxing the prolonged correction at every level.
func (s *Solver) solveMG(C, b, lambda *grid.ScalarField, D float64) (stats Stats) {
	var (
		nl = len(s.levels)
	)
	stats.NRelax = s.NRelax
	for l := 1; l < nl; l++ {
		grid.Restrict(s.lam[l-1], s.lam[l])
	}
	norm := residual(C, b, lambda, s.resid, D)
	stats.Resb = norm
	stats.Resa = norm
	for norm > s.Tolerance && stats.I < MaxCycles {
		s.res[0].Assign(s.resid)
		for l := 1; l < nl; l++ {
			grid.Restrict(s.res[l-1], s.res[l])
		}
		coarsest := nl - 1
		s.dx[coarsest].M.Equate(0)
		relax(s.dx[coarsest], s.res[coarsest], s.lam[coarsest], D, s.NRelax)
		for l := coarsest - 1; l >= 0; l-- {
			grid.Prolong(s.dx[l+1], s.dx[l])
			relax(s.dx[l], s.res[l], s.lam[l], D, s.NRelax)
		}
		C.M.Add(s.dx[0].M)
		C.ApplyBC()
		norm = residual(C, b, lambda, s.resid, D)
		stats.I++
		stats.Resa = norm
	}
	if norm > s.Tolerance {
		fmt.Printf("WARNING: diffusion solve did not converge after %d cycles, residual = %g\n",
			stats.I, norm)
	}
	return
}
