package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventCadence(t *testing.T) {
	var (
		s          = New(10)
		initCount  = 0
		initAtIter = -1
		everyIters []int
		stepIters  []int
		endCount   = 0
	)
	s.OnInit("init", func(s *Simulation) {
		initCount++
		initAtIter = s.Iter
	})
	s.Every("movie", 4, func(s *Simulation) {
		everyIters = append(everyIters, s.Iter)
	})
	s.AtEnd("final", func(s *Simulation) {
		endCount++
		assert.Equal(t, 10., s.Time)
	})
	s.EachIteration("integration", func(s *Simulation) {
		stepIters = append(stepIters, s.Iter)
		s.DtNext(1.)
	})
	s.Run()

	assert.Equal(t, 1, initCount)
	assert.Equal(t, 0, initAtIter)
	// 10 unit steps: the clock reaches the final time during iteration 9
	// and the loop exits there.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, stepIters)
	assert.Equal(t, []int{1, 5, 9}, everyIters)
	assert.Equal(t, 1, endCount)
}

func TestDtNextClipsFinalStep(t *testing.T) {
	var (
		s   = New(2.5)
		dts []float64
	)
	s.EachIteration("integration", func(s *Simulation) {
		dts = append(dts, s.DtNext(1.))
	})
	s.Run()
	assert.Equal(t, 2.5, s.Time)
	assert.Equal(t, []float64{1, 1, 0.5}, dts)
}

func TestMaxIterGuard(t *testing.T) {
	s := New(1)
	s.MaxIter = 5
	fired := 0
	// no integration event: the clock never advances, the guard must trip
	s.EachIteration("noop", func(s *Simulation) { fired++ })
	s.Run()
	assert.True(t, fired <= 7)
}

func TestBadArguments(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	s := New(1)
	assert.Panics(t, func() { s.Every("bad", 0, func(*Simulation) {}) })
}
