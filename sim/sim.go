// Package sim provides the generic time loop driving the simulation cases:
// named events fire on iteration or time triggers, and the integration
// event advances the clock through DtNext, which clips the last step so the
// run lands exactly on the final time.
package sim

import "fmt"

type Action func(s *Simulation)

type triggerKind uint8

const (
	atStart triggerKind = iota
	eachIteration
	every
	atEnd
)

type event struct {
	name     string
	kind     triggerKind
	interval int
	action   Action
}

type Simulation struct {
	Time, Dt  float64
	Iter      int
	FinalTime float64
	// MaxIter stops a run that makes no time progress; zero means no cap.
	MaxIter int
	events  []*event
}

func New(finalTime float64) (s *Simulation) {
	if finalTime <= 0 {
		panic(fmt.Errorf("final time must be positive, got %g", finalTime))
	}
	s = &Simulation{
		FinalTime: finalTime,
	}
	return
}

// OnInit registers an event firing once at iteration 0, before any
// integration step.
func (s *Simulation) OnInit(name string, fn Action) {
	s.events = append(s.events, &event{name: name, kind: atStart, action: fn})
}

// EachIteration registers an event firing every iteration, the slot the
// cases use for their integration step.
func (s *Simulation) EachIteration(name string, fn Action) {
	s.events = append(s.events, &event{name: name, kind: eachIteration, action: fn})
}

// Every registers an event firing at iterations 1, 1+n, 1+2n, ..., the
// cadence of the periodic movie output.
func (s *Simulation) Every(name string, n int, fn Action) {
	if n < 1 {
		panic(fmt.Errorf("event %q: interval must be at least 1, got %d", name, n))
	}
	s.events = append(s.events, &event{name: name, kind: every, interval: n, action: fn})
}

// AtEnd registers an event firing once after the clock reaches FinalTime.
func (s *Simulation) AtEnd(name string, fn Action) {
	s.events = append(s.events, &event{name: name, kind: atEnd, action: fn})
}

// DtNext selects the next timestep: max, clipped so the run cannot step
// past FinalTime. The clock advances immediately and the chosen dt is
// recorded for progress reporting.
func (s *Simulation) DtNext(max float64) float64 {
	dt := max
	if s.Time+dt >= s.FinalTime {
		dt = s.FinalTime - s.Time
		s.Time = s.FinalTime
	} else {
		s.Time += dt
	}
	s.Dt = dt
	return dt
}

func (e *event) matches(iter int) bool {
	switch e.kind {
	case atStart:
		return iter == 0
	case eachIteration:
		return true
	case every:
		return iter >= 1 && (iter-1)%e.interval == 0
	}
	return false
}

// Run executes the event loop. Per iteration, events fire in registration
// order; the loop ends when the clock reaches FinalTime, after which the
// end events fire.
func (s *Simulation) Run() {
	s.Time, s.Dt, s.Iter = 0, 0, 0
	for {
		for _, e := range s.events {
			if e.kind != atEnd && e.matches(s.Iter) {
				e.action(s)
			}
		}
		if s.Time >= s.FinalTime {
			break
		}
		s.Iter++
		if s.MaxIter > 0 && s.Iter > s.MaxIter {
			fmt.Printf("WARNING: run stopped at iteration cap %d, t = %g of %g\n",
				s.MaxIter, s.Time, s.FinalTime)
			break
		}
	}
	for _, e := range s.events {
		if e.kind == atEnd {
			e.action(s)
		}
	}
}
