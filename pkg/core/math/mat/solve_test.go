package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveLinearSystem_KnownSolution(t *testing.T) {
	a := NewDenseMatrix(2, 2)
	copy(a.Data, []float64{2, 1, 1, 3})
	b := DenseVectorFrom(5, 10)

	err := SolveLinearSystem(a, b)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, b[0], 1e-9)
	assert.InDelta(t, 3.0, b[1], 1e-9)
}

func TestSolveLinearSystem_NonSymmetric(t *testing.T) {
	a := NewDenseMatrix(3, 3)
	copy(a.Data, []float64{
		2, 1, 1,
		0, 3, 0,
		1, 0, 2,
	})
	b := DenseVectorFrom(3, 6, 3)

	err := SolveLinearSystem(a, b)

	require.NoError(t, err)
	check := MulVec(a, b)
	assert.InDelta(t, 3.0, check[0], 1e-6)
	assert.InDelta(t, 6.0, check[1], 1e-6)
	assert.InDelta(t, 3.0, check[2], 1e-6)
}

func TestSolveLinearSystem_SingularFails(t *testing.T) {
	a := NewDenseMatrix(2, 2)
	copy(a.Data, []float64{1, 2, 2, 4})
	b := DenseVectorFrom(1, 2)

	err := SolveLinearSystem(a, b)

	require.Error(t, err)
}
