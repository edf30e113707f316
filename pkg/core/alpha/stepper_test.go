package alpha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepper_RejectsNonPositiveStepSize(t *testing.T) {
	_, err := NewStepper(0, 0, 10, 0)
	assert.Error(t, err)

	_, err = NewStepper(0, -0.1, 10, 0)
	assert.Error(t, err)
}

func TestNewStepper_DefaultsMaxIterations(t *testing.T) {
	s, err := NewStepper(0, 0.1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxIterations, s.MaxIterations())
}

func TestStepper_AdvanceTimeStepAccumulatesAndResetsIterations(t *testing.T) {
	s, err := NewStepper(1.0, 0.5, 4, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, s.CurrentTime(), 1e-12)

	t1 := s.AdvanceTimeStep()
	assert.InDelta(t, 1.5, t1, 1e-12)
	s.RecordIteration()
	s.RecordIteration()
	assert.Equal(t, 2, s.Iterations())
	assert.Equal(t, 2, s.TotalIterations())

	t2 := s.AdvanceTimeStep()
	assert.InDelta(t, 2.0, t2, 1e-12)
	assert.Equal(t, 0, s.Iterations(), "per-step counter resets on advance")
	assert.Equal(t, 2, s.TotalIterations(), "cumulative counter survives advance")

	s.RecordIteration()
	assert.Equal(t, 1, s.Iterations())
	assert.Equal(t, 3, s.TotalIterations())
}
