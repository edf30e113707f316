package heavytop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/core/math/vec"
	"github.com/itohio/heavytop/pkg/core/state"
)

func newTestBody(t *testing.T) Body {
	mm, err := state.NewMassMatrixFromScalar(2, 1, 1, 2)
	require.NoError(t, err)
	forces := state.NewGeneralizedForces([3]float64{0, 0, -9.81 * 2}, [3]float64{0, 0, 0})
	return NewBody(mm, vec.NewVector3(0, 0, 1), forces)
}

func identityQ() mat.DenseVector {
	return mat.DenseVectorFrom(0, 0, 1, 1, 0, 0, 0)
}

func TestConstraintGradient_Shape(t *testing.T) {
	b := newTestBody(t)

	phi, r, err := b.constraintValue(identityQ())
	require.NoError(t, err)

	// Identity orientation: R·X = X = (0,0,1); position is also (0,0,1),
	// so the pivot constraint is satisfied exactly.
	assert.InDelta(t, 0.0, phi[0], 1e-12)
	assert.InDelta(t, 0.0, phi[1], 1e-12)
	assert.InDelta(t, 0.0, phi[2], 1e-12)

	grad := b.ConstraintGradient(r)
	assert.Equal(t, 3, grad.Rows)
	assert.Equal(t, 6, grad.Cols)
	assert.Equal(t, -1.0, grad.At(0, 0))
	assert.Equal(t, -1.0, grad.At(1, 1))
	assert.Equal(t, -1.0, grad.At(2, 2))
}

func TestResidual_HasExpectedLength(t *testing.T) {
	b := newTestBody(t)
	q := identityQ()
	v := mat.NewDenseVector(6)
	vdot := mat.NewDenseVector(6)
	lambda := mat.NewDenseVector(3)

	r, err := b.Residual(q, v, vdot, lambda)

	require.NoError(t, err)
	assert.Len(t, r, 9)
}

func TestIterationMatrix_IsSquareAndSymmetricBlockStructure(t *testing.T) {
	b := newTestBody(t)
	q := identityQ()
	v := mat.NewDenseVector(6)
	lambda := mat.NewDenseVector(3)

	j, err := b.IterationMatrix(1, 1, q, v, lambda, 0.1, mat.NewDenseVector(6))

	require.NoError(t, err)
	assert.Equal(t, 9, j.Rows)
	assert.Equal(t, 9, j.Cols)
	// Bottom-right 3x3 block (the constraint-constraint coupling) is zero.
	for i := 6; i < 9; i++ {
		for k := 6; k < 9; k++ {
			assert.Zero(t, j.At(i, k))
		}
	}
}

func TestResidual_FailsOnNonUnitEmbeddedQuaternion(t *testing.T) {
	b := newTestBody(t)
	q := mat.DenseVectorFrom(0, 0, 1, 2, 0, 0, 0)
	v := mat.NewDenseVector(6)
	vdot := mat.NewDenseVector(6)
	lambda := mat.NewDenseVector(3)

	_, err := b.Residual(q, v, vdot, lambda)

	require.Error(t, err)
}
