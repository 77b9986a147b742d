package output

import (
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/comphy-lab/reactdiff/grid"
	"github.com/comphy-lab/reactdiff/utils"
)

// LivePlot shades the concentration field in an interactive window while a
// run progresses, behind the --graph flag. The Cartesian grid is turned
// into a TriMesh (two triangles per quad of adjacent cell centers) so the
// field can be vertex shaded.
type LivePlot struct {
	ch      *chart2d.Chart2D
	gm      geometry.TriMesh
	field   []float32
	delayMS int
}

func NewLivePlot(g *grid.Grid, delayMS int) (lp *LivePlot) {
	lp = &LivePlot{
		gm:      cellCenterTriMesh(g),
		field:   make([]float32, g.N*g.N),
		delayMS: delayMS,
	}
	lp.ch = chart2d.NewChart2D(0, float32(g.Size), 0, float32(g.Size),
		1024, 1024, utils2.WHITE, utils2.BLACK)
	return
}

func cellCenterTriMesh(g *grid.Grid) (gm geometry.TriMesh) {
	var (
		n = g.N
	)
	gm = geometry.TriMesh{
		XY:       make([]float32, 2*n*n),
		TriVerts: make([][3]int64, 2*(n-1)*(n-1)),
	}
	for i := 0; i < n; i++ {
		y := float32(g.X(i))
		for j := 0; j < n; j++ {
			x := float32(g.X(j))
			gm.XY[2*(i*n+j)] = x
			gm.XY[2*(i*n+j)+1] = y
		}
	}
	var k int
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			v00 := int64(i*n + j)
			v01 := v00 + 1
			v10 := v00 + int64(n)
			v11 := v10 + 1
			gm.TriVerts[k] = [3]int64{v00, v01, v11}
			gm.TriVerts[k+1] = [3]int64{v00, v11, v10}
			k += 2
		}
	}
	return
}

// Update pushes the current field values into the window.
func (lp *LivePlot) Update(f *grid.ScalarField) {
	var (
		n = f.G.N
	)
	fmin, fmax, _, _ := f.Stats()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			lp.field[i*n+j] = float32(f.At(i, j))
		}
	}
	vs := geometry.VertexScalar{
		TMesh:       &lp.gm,
		FieldValues: lp.field,
	}
	lp.ch.AddShadedVertexScalar(&vs, float32(fmin), float32(fmax))
	if lp.delayMS > 0 {
		utils.SleepFor(lp.delayMS)
	}
}
