package alpha

import (
	"fmt"

	"github.com/itohio/heavytop/pkg/errs"
)

// DefaultMaxIterations is the time stepper's default cap on Newton
// iterations per step (spec.md §3).
const DefaultMaxIterations = 10

// Stepper holds the time-stepping schedule and tracks the integrator's
// progress through it.
type Stepper struct {
	t0 float64
	h  float64
	n  int
	m  int

	t               float64
	iterations      int
	totalIterations int
}

// NewStepper constructs a time stepper for N steps of size h starting at
// t0, with at most maxIterations Newton iterations per step (0 selects
// DefaultMaxIterations). Fails when h is not strictly positive.
func NewStepper(t0, h float64, n, maxIterations int) (*Stepper, error) {
	if h <= 0 {
		return nil, fmt.Errorf("%w: step size h must be > 0, got %g", errs.ErrInvalidArgument, h)
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Stepper{t0: t0, h: h, n: n, m: maxIterations, t: t0}, nil
}

func (s *Stepper) CurrentTime() float64   { return s.t }
func (s *Stepper) StepSize() float64      { return s.h }
func (s *Stepper) NumSteps() int          { return s.n }
func (s *Stepper) MaxIterations() int     { return s.m }
func (s *Stepper) Iterations() int        { return s.iterations }
func (s *Stepper) TotalIterations() int   { return s.totalIterations }

// AdvanceTimeStep moves the stepper's current time forward by h and resets
// the per-step iteration counter, returning the new current time.
func (s *Stepper) AdvanceTimeStep() float64 {
	s.t += s.h
	s.iterations = 0
	return s.t
}

// RecordIteration bumps both the per-step and cumulative iteration
// counters (spec.md §3: "monotonically non-decreasing").
func (s *Stepper) RecordIteration() {
	s.iterations++
	s.totalIterations++
}
