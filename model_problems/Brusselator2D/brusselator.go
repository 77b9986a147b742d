// Package Brusselator2D runs the coupled reaction-diffusion equations of
// the Brusselator autocatalytic model,
//
//	dC1/dt = lap(C1) + k*(ka - (kb+1)*C1 + C1^2*C2)
//	dC2/dt = D*lap(C2) + k*(kb*C1 - C1^2*C2)
//
// on a Cartesian multigrid with the time-implicit diffusion solver and an
// operator split reaction term. Parameters follow Pena and Perez-Garcia
// (2001); the sweep over the control parameter mu covers the weak
// instability, stripe and hexagon regimes on either side of the Turing
// onset.
package Brusselator2D

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/comphy-lab/reactdiff/InputParameters"
	"github.com/comphy-lab/reactdiff/diffusion"
	"github.com/comphy-lab/reactdiff/grid"
	"github.com/comphy-lab/reactdiff/output"
	"github.com/comphy-lab/reactdiff/sim"
)

// Case defaults matching the reference runs.
const (
	DefN              = 128
	DefDomainSize     = 64.
	DefTolerance      = 1.e-4
	DefFinalTime      = 3000.
	DefMaxDt          = 1. // cap for stability of the explicit reactive terms
	DefOutputInterval = 10
	DefImageSize      = 200
	DefPlotSteps      = 1
	DefSpread         = 2.
	DefK              = 1.
	DefKa             = 4.5
	DefD              = 8.
	DefSeed           = 17
	AnimationFPS      = 25
)

var DefMu = []float64{0.04, 0.1, 0.98}

type Brusselator struct {
	// Input parameters
	K, Ka, D             float64
	Mu                   []float64
	FinalTime, MaxDt     float64
	Tolerance, Spread    float64
	N, OutputInterval    int
	ImageSize, PlotSteps int
	Seed                 int64
	OutputDir            string
	GraphDelayMS         int

	// Per-run state
	mu, kb     float64
	G          *grid.Grid
	C1, C2     *grid.ScalarField
	r, beta    *grid.ScalarField
	solver     *diffusion.Solver
	mgd1, mgd2 diffusion.Stats
	anim       *output.Animation
	history    output.History
	plot       *output.LivePlot
}

func NewBrusselator(ip *InputParameters.InputParameters, outputDir string) (c *Brusselator) {
	c = &Brusselator{
		K:              DefK,
		Ka:             DefKa,
		D:              DefD,
		Mu:             DefMu,
		FinalTime:      DefFinalTime,
		MaxDt:          DefMaxDt,
		Tolerance:      DefTolerance,
		Spread:         DefSpread,
		N:              DefN,
		OutputInterval: DefOutputInterval,
		ImageSize:      DefImageSize,
		PlotSteps:      DefPlotSteps,
		Seed:           DefSeed,
		OutputDir:      outputDir,
	}
	if ip != nil {
		if ip.K != 0 {
			c.K = ip.K
		}
		if ip.Ka != 0 {
			c.Ka = ip.Ka
		}
		if ip.D != 0 {
			c.D = ip.D
		}
		if len(ip.Mu) != 0 {
			c.Mu = ip.Mu
		}
		if ip.FinalTime != 0 {
			c.FinalTime = ip.FinalTime
		}
		if ip.MaxDt != 0 {
			c.MaxDt = ip.MaxDt
		}
		if ip.Tolerance != 0 {
			c.Tolerance = ip.Tolerance
		}
		if ip.Spread != 0 {
			c.Spread = ip.Spread
		}
		if ip.N != 0 {
			c.N = ip.N
		}
		if ip.OutputInterval != 0 {
			c.OutputInterval = ip.OutputInterval
		}
		if ip.ImageSize != 0 {
			c.ImageSize = ip.ImageSize
		}
		if ip.Seed != 0 {
			c.Seed = ip.Seed
		}
	}
	c.G = grid.NewGrid(c.N, DefDomainSize)
	if ip != nil && ip.DomainSize != 0 {
		c.G = grid.NewGrid(c.N, ip.DomainSize)
	}
	c.solver = diffusion.NewSolver(c.Tolerance)
	if ip != nil && ip.Solver != "" {
		backend, err := diffusion.NewBackend(ip.Solver)
		if err != nil {
			panic(err)
		}
		c.solver.Backend = backend
	}
	c.C1 = grid.NewScalarField(c.G)
	c.C2 = grid.NewScalarField(c.G)
	c.r = grid.NewScalarField(c.G)
	c.beta = grid.NewScalarField(c.G)
	return
}

// KbCrit is the critical bifurcation parameter: marginal stability of the
// homogeneous state is at kb = (1 + ka*sqrt(1/D))^2, and each run sets
// kb = KbCrit*(1+mu).
func (c *Brusselator) KbCrit() float64 {
	nu := math.Sqrt(1. / c.D)
	kbc := 1. + c.Ka*nu
	return kbc * kbc
}

// FixedPoint is the homogeneous stationary solution C1 = ka, C2 = kb/ka
// about which the initial condition is perturbed.
func (c *Brusselator) FixedPoint(mu float64) (c1, c2 float64) {
	kb := c.KbCrit() * (1. + mu)
	return c.Ka, kb / c.Ka
}

// Run executes one simulation per sweep value of mu, sharing the animation
// file across runs the way the original appended all frames to one movie.
func (c *Brusselator) Run(graph bool) (err error) {
	fmt.Printf("Brusselator: N = %d, L = %g, k = %g, ka = %g, D = %g, kbcrit = %8.5f\n",
		c.N, c.G.Size, c.K, c.Ka, c.D, c.KbCrit())
	fmt.Printf("Solver: %s, tolerance = %g\n", c.solver.Backend, c.Tolerance)

	c.anim, err = output.NewAnimation(filepath.Join(c.OutputDir, "f.avi"),
		c.ImageSize, c.ImageSize, AnimationFPS)
	if err != nil {
		return
	}
	defer func() {
		if cerr := c.anim.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if graph {
		c.plot = output.NewLivePlot(c.G, c.GraphDelayMS)
	}

	for run, mu := range c.Mu {
		if err = c.runOne(run, mu); err != nil {
			return
		}
	}
	return
}

func (c *Brusselator) runOne(run int, mu float64) (err error) {
	var (
		noise = grid.NewNoise(c.Seed + int64(run))
	)
	c.mu = mu
	c.history = output.History{}
	fmt.Printf("\nrun %d: mu = %g, final time = %g\n", run, mu, c.FinalTime)

	s := sim.New(c.FinalTime)

	s.OnInit("init", func(s *sim.Simulation) {
		c.kb = c.KbCrit() * (1. + c.mu)
		// Perturb the unstable stationary solution C1 = ka, C2 = kb/ka
		// with noise in [-0.01,0.01] to trigger pattern formation.
		c.C1.Foreach(func(i, j int, x, y float64) float64 {
			return c.Ka
		})
		c.C2.Foreach(func(i, j int, x, y float64) float64 {
			return c.kb/c.Ka + 0.01*noise.Sample()
		})
	})

	s.Every("movie", c.OutputInterval, func(s *sim.Simulation) {
		if ferr := c.anim.AddFrame(output.Render(c.C1, c.imageOptions())); ferr != nil {
			err = ferr
		}
		fmt.Fprintf(os.Stderr, "%d %g %g %d %d\n",
			s.Iter, s.Time, s.Dt, c.mgd1.I, c.mgd2.I)
		c.history.Append(s.Iter, s.Time, s.Dt, c.mgd1.I, c.mgd2.I)
	})

	if c.plot != nil {
		steps := c.PlotSteps
		if steps < 1 {
			steps = 1
		}
		s.Every("plot", steps, func(s *sim.Simulation) {
			c.plot.Update(c.C1)
		})
	}

	s.AtEnd("final", func(s *sim.Simulation) {
		name := filepath.Join(c.OutputDir, fmt.Sprintf("mu-%g.png", c.mu))
		if ferr := output.WritePNG(c.C1, name, c.imageOptions()); ferr != nil {
			err = ferr
		}
		stats := filepath.Join(c.OutputDir, fmt.Sprintf("mu-%g-stats.png", c.mu))
		if cerr := c.history.WriteIterationChart(stats); cerr != nil {
			fmt.Printf("skipping convergence chart: %s\n", cerr)
		}
	})

	s.EachIteration("integration", func(s *sim.Simulation) {
		c.Step(s.DtNext(c.MaxDt))
	})

	s.Run()
	fmt.Printf("run %d done: %d iterations, %d frames\n", run, s.Iter, c.anim.Frames())
	return
}

// Step advances both concentrations by one operator split implicit step.
func (c *Brusselator) Step(dt float64) {
	var (
		k, ka, kb = c.K, c.Ka, c.kb
	)
	// C1: source r = k*ka, linear coefficient beta = k*(C1*C2 - kb - 1)
	c.r.Foreach(func(i, j int, x, y float64) float64 {
		return k * ka
	})
	c.beta.Foreach(func(i, j int, x, y float64) float64 {
		return k * (c.C1.At(i, j)*c.C2.At(i, j) - kb - 1.)
	})
	c.mgd1 = c.solver.Diffusion(c.C1, dt, diffusion.Coefficients{R: c.r, Beta: c.beta})

	// C2: diffusion coefficient D, r = k*kb*C1, beta = -k*C1^2
	c.r.Foreach(func(i, j int, x, y float64) float64 {
		return k * kb * c.C1.At(i, j)
	})
	c.beta.Foreach(func(i, j int, x, y float64) float64 {
		v := c.C1.At(i, j)
		return -k * v * v
	})
	c.mgd2 = c.solver.Diffusion(c.C2, dt, diffusion.Coefficients{D: c.D, R: c.r, Beta: c.beta})
}

// Stats returns the solver statistics of the most recent step.
func (c *Brusselator) Stats() (mgd1, mgd2 diffusion.Stats) {
	return c.mgd1, c.mgd2
}

func (c *Brusselator) imageOptions() output.Options {
	return output.Options{
		N:      c.ImageSize,
		Linear: true,
		Spread: c.Spread,
	}
}
