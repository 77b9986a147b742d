package diffusion

import (
	"fmt"

	"github.com/comphy-lab/reactdiff/grid"
	"github.com/comphy-lab/reactdiff/utils"
	"github.com/james-bowman/sparse"
)

// The sparse backend assembles the fine-grid Poisson-Helmholtz operator as
// an explicit matrix and iterates damped Jacobi on it. It is much slower
// than the multigrid cycle and exists to cross-check it: both backends
// discretize the same operator, so their converged solutions must agree to
// within tolerance.

const (
	jacobiDamping   = 2. / 3.
	sparseMaxSweeps = 100000
)

// assembleOperator builds A with one row per interior cell, row-major
// (i*N+j). Neumann walls drop the outside neighbor and weaken the diagonal
// accordingly, mirroring the reflected-ghost stencil of the grid solver.
func assembleOperator(g *grid.Grid, lambda *grid.ScalarField, D float64) *sparse.CSR {
	var (
		n   = g.N
		idd = D / (g.Delta * g.Delta)
		dok = sparse.NewDOK(n*n, n*n)
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row := i*n + j
			nNeighbors := 0
			if i > 0 {
				dok.Set(row, row-n, idd)
				nNeighbors++
			}
			if i < n-1 {
				dok.Set(row, row+n, idd)
				nNeighbors++
			}
			if j > 0 {
				dok.Set(row, row-1, idd)
				nNeighbors++
			}
			if j < n-1 {
				dok.Set(row, row+1, idd)
				nNeighbors++
			}
			dok.Set(row, row, lambda.At(i, j)-float64(nNeighbors)*idd)
		}
	}
	return dok.ToCSR()
}

func (s *Solver) solveSparse(C, b, lambda *grid.ScalarField, D float64) (stats Stats) {
	var (
		g = C.G
		n = g.N
		A = assembleOperator(g, lambda, D)
	)
	stats.NRelax = 1
	x := utils.NewVector(n * n)
	rhs := utils.NewVector(n * n)
	diag := utils.NewVector(n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x.Set(i*n+j, C.At(i, j))
			rhs.Set(i*n+j, b.At(i, j))
		}
	}
	for row := 0; row < n*n; row++ {
		diag.Set(row, A.At(row, row))
	}

	res := utils.NewVector(n * n)
	norm := sparseResidual(A, x, rhs, res)
	stats.Resb = norm
	stats.Resa = norm
	for norm > s.Tolerance && stats.I < sparseMaxSweeps {
		for row, r := range res.DataP {
			x.DataP[row] += jacobiDamping * r / diag.DataP[row]
		}
		norm = sparseResidual(A, x, rhs, res)
		stats.I++
		stats.Resa = norm
	}
	if norm > s.Tolerance {
		fmt.Printf("WARNING: sparse diffusion solve did not converge after %d sweeps, residual = %g\n",
			stats.I, norm)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			C.Set(i, j, x.AtVec(i*n+j))
		}
	}
	C.ApplyBC()
	return
}

// sparseResidual fills res = rhs - A*x and returns the max-norm.
func sparseResidual(A *sparse.CSR, x, rhs, res utils.Vector) (norm float64) {
	copy(res.DataP, rhs.DataP)
	A.DoNonZero(func(i, j int, v float64) {
		res.DataP[i] -= v * x.DataP[j]
	})
	return res.MaxAbs()
}
