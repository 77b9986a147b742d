package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The zero value of every
// field means "use the case default", so an empty file reproduces the
// reference runs.
type InputParameters struct {
	Title          string    `yaml:"Title"`
	N              int       `yaml:"N"`              // grid cells per side, power of two
	DomainSize     float64   `yaml:"DomainSize"`     // physical edge length
	Tolerance      float64   `yaml:"Tolerance"`      // diffusion solver residual target
	FinalTime      float64   `yaml:"FinalTime"`      // per-run end time
	MaxDt          float64   `yaml:"MaxDt"`          // timestep cap for the reactive terms
	OutputInterval int       `yaml:"OutputInterval"` // iterations between movie frames
	ImageSize      int       `yaml:"ImageSize"`      // raster edge in pixels
	Spread         float64   `yaml:"Spread"`         // color scale stddev multiplier
	Mu             []float64 `yaml:"Mu"`             // bifurcation control sweep values
	K              float64   `yaml:"K"`              // reaction rate constant
	Ka             float64   `yaml:"Ka"`             // production parameter
	D              float64   `yaml:"D"`              // diffusion coefficient ratio
	Seed           int64     `yaml:"Seed"`           // perturbation noise seed
	Solver         string    `yaml:"Solver"`         // "multigrid" (default) or "sparse"
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= N\n", ip.N)
	fmt.Printf("%8.5f\t\t= DomainSize\n", ip.DomainSize)
	fmt.Printf("%8.2g\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= MaxDt\n", ip.MaxDt)
	fmt.Printf("[%d]\t\t\t= OutputInterval\n", ip.OutputInterval)
	fmt.Printf("[%d]\t\t\t= ImageSize\n", ip.ImageSize)
	fmt.Printf("%8.5f\t\t= Spread\n", ip.Spread)
	fmt.Printf("%v\t= Mu sweep\n", ip.Mu)
	fmt.Printf("%8.5f\t\t= K\n", ip.K)
	fmt.Printf("%8.5f\t\t= Ka\n", ip.Ka)
	fmt.Printf("%8.5f\t\t= D\n", ip.D)
	fmt.Printf("[%d]\t\t\t= Seed\n", ip.Seed)
	fmt.Printf("[%s]\t\t= Solver\n", ip.Solver)
}
