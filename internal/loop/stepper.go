// Package loop runs a fixed-timestep simulation inside a variable-rate
// frame loop.
package loop

import (
	"time"
)

// Tick is called once per fixed physics step with the simulation time at the
// start of the step and the step length, both in seconds.
type Tick func(t, dt float64)

// Stepper accumulates wall-clock frame time and converts it into whole
// fixed-size physics steps. Whatever time is left over is reported as the
// interpolation factor for rendering.
type Stepper struct {
	dt       float64
	maxFrame float64

	accumulator float64
	simTime     float64
	last        time.Time
	started     bool
}

// NewStepper creates a stepper with fixed step dt. Frames longer than
// maxFrame are clamped so a stall cannot queue an unbounded number of steps.
// A non-positive maxFrame defaults to a quarter second.
func NewStepper(dt, maxFrame time.Duration) *Stepper {
	if dt <= 0 {
		dt = time.Second / 60
	}
	if maxFrame <= 0 {
		maxFrame = 250 * time.Millisecond
	}
	return &Stepper{
		dt:       dt.Seconds(),
		maxFrame: maxFrame.Seconds(),
	}
}

// DT returns the fixed step length in seconds.
func (s *Stepper) DT() float64 {
	return s.dt
}

// SimTime returns the total simulated time in seconds.
func (s *Stepper) SimTime() float64 {
	return s.simTime
}

// Advance feeds one frame of elapsed wall-clock time, runs tick for every
// whole step that fits, and returns alpha in [0, 1) along with the number
// of steps taken.
func (s *Stepper) Advance(frame time.Duration, tick Tick) (float64, int) {
	ft := frame.Seconds()
	if ft < 0 {
		ft = 0
	}
	if ft > s.maxFrame {
		ft = s.maxFrame
	}
	s.accumulator += ft

	steps := 0
	for s.accumulator >= s.dt {
		tick(s.simTime, s.dt)
		s.simTime += s.dt
		s.accumulator -= s.dt
		steps++
	}

	return s.accumulator / s.dt, steps
}

// AdvanceTo is Advance driven by timestamps: the first call only records now
// and takes no steps.
func (s *Stepper) AdvanceTo(now time.Time, tick Tick) (float64, int) {
	if !s.started {
		s.started = true
		s.last = now
		return s.accumulator / s.dt, 0
	}
	frame := now.Sub(s.last)
	s.last = now
	return s.Advance(frame, tick)
}

// Reset drops accumulated time and forgets the last timestamp, so the next
// AdvanceTo starts a fresh frame sequence. Simulated time is kept.
func (s *Stepper) Reset() {
	s.accumulator = 0
	s.started = false
}
