package output

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// History accumulates the per-step progress numbers of a run (the same
// values the stderr progress lines carry) so a convergence chart can be
// written at the end of each sweep value.
type History struct {
	Iter     []float64
	Time     []float64
	Dt       []float64
	MG1, MG2 []float64
}

func (h *History) Append(iter int, t, dt float64, mg1, mg2 int) {
	h.Iter = append(h.Iter, float64(iter))
	h.Time = append(h.Time, t)
	h.Dt = append(h.Dt, dt)
	h.MG1 = append(h.MG1, float64(mg1))
	h.MG2 = append(h.MG2, float64(mg2))
}

func (h *History) Len() int { return len(h.Iter) }

// WriteIterationChart plots dt and the two solver cycle counts against the
// iteration index.
func (h *History) WriteIterationChart(fileName string) (err error) {
	if h.Len() < 2 {
		return fmt.Errorf("not enough history to chart: %d points", h.Len())
	}
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "iteration"},
		YAxis: chart.YAxis{Name: "dt / solver cycles"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "dt", XValues: h.Iter, YValues: h.Dt},
			chart.ContinuousSeries{Name: "C1 solver cycles", XValues: h.Iter, YValues: h.MG1},
			chart.ContinuousSeries{Name: "C2 solver cycles", XValues: h.Iter, YValues: h.MG2},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	file, err := os.Create(fileName)
	if err != nil {
		return
	}
	defer file.Close()
	err = graph.Render(chart.PNG, file)
	return
}
