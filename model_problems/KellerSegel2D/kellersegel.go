// Package KellerSegel2D is the chemotaxis case: cell density rho and
// chemoattractant concentration c coupled through
//
//	drho/dt = lap(rho) - chi*div(rho*grad(c))
//	dc/dt   = D*lap(c) + alpha*rho - beta*c
//
// The chemotactic flux term is not implemented yet: this case currently
// runs the Brusselator dynamics unchanged, as a placeholder carrying the
// Keller-Segel naming.
//
// TODO: implement the chemotactic coupling chi*div(rho*grad(c)) in the
// integration step and replace the parameter sweep with chemotaxis regimes
// (aggregation, blow-up, traveling waves).
package KellerSegel2D

import (
	"github.com/comphy-lab/reactdiff/InputParameters"
	"github.com/comphy-lab/reactdiff/model_problems/Brusselator2D"
)

type KellerSegel struct {
	*Brusselator2D.Brusselator
}

func NewKellerSegel(ip *InputParameters.InputParameters, outputDir string) (c *KellerSegel) {
	c = &KellerSegel{
		Brusselator: Brusselator2D.NewBrusselator(ip, outputDir),
	}
	return
}
