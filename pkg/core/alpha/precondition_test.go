package alpha

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/heavytop/pkg/core/math/mat"
)

func TestPrecondition_AppliesTwoSidedConstraintScaling(t *testing.T) {
	// n=2 velocity dof, m=1 constraint row; total 3x3.
	j := mat.NewDenseMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			j.Set(i, k, float64(i*3+k+1))
		}
	}
	r := mat.DenseVectorFrom(1, 2, 3)

	beta, h := 0.25, 0.1
	rowScale := beta * h * h
	colScale := 1.0 / (beta * h * h)

	jOut, rOut := Precondition(j, r, 2, beta, h)

	// Velocity rows (0,1), velocity column (0): untouched.
	assert.Equal(t, j.At(0, 0), jOut.At(0, 0))
	assert.Equal(t, j.At(1, 1), jOut.At(1, 1))

	// Velocity rows, constraint column (2): DR only.
	assert.InDelta(t, j.At(0, 2)*colScale, jOut.At(0, 2), 1e-9)
	assert.InDelta(t, j.At(1, 2)*colScale, jOut.At(1, 2), 1e-9)

	// Constraint row (2), velocity columns: DL only.
	assert.InDelta(t, j.At(2, 0)*rowScale, jOut.At(2, 0), 1e-9)
	assert.InDelta(t, j.At(2, 1)*rowScale, jOut.At(2, 1), 1e-9)

	// Constraint row AND column (2,2): DL then DR, both applied.
	assert.InDelta(t, j.At(2, 2)*rowScale*colScale, jOut.At(2, 2), 1e-9)

	// Residual: constraint row scaled by DL only, velocity rows untouched.
	assert.Equal(t, r[0], rOut[0])
	assert.Equal(t, r[1], rOut[1])
	assert.InDelta(t, r[2]*rowScale, rOut[2], 1e-9)
}

func TestPrecondition_DoesNotMutateInputs(t *testing.T) {
	j := mat.NewDenseMatrix(2, 2)
	j.Set(1, 1, 5)
	r := mat.DenseVectorFrom(1, 2)

	Precondition(j, r, 1, 0.25, 0.1)

	assert.Equal(t, 5.0, j.At(1, 1))
	assert.Equal(t, 2.0, r[1])
}
