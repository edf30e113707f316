package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityTimesVectorIsVector(t *testing.T) {
	v := DenseVectorFrom(1, 2, 3)

	got := MulVec(Identity(3), v)

	assert.Equal(t, DenseVector{1, 2, 3}, got)
}

func TestTransposeIsInvolution(t *testing.T) {
	m := NewDenseMatrix(2, 3)
	copy(m.Data, []float64{1, 2, 3, 4, 5, 6})

	got := Transpose(Transpose(m))

	assert.Equal(t, m.Data, got.Data)
	assert.Equal(t, m.Rows, got.Rows)
	assert.Equal(t, m.Cols, got.Cols)
}

func TestCrossProductMatrixActsAsCross(t *testing.T) {
	v := [3]float64{1, 2, 3}
	w := DenseVectorFrom(0, 1, 0)

	got := MulVec(CrossProductMatrix(v), w)

	// v × (0,1,0) = (-3, 0, 1)
	assert.Equal(t, DenseVector{-3, 0, 1}, got)
}

func TestMulScalarAndAddRoundTrip(t *testing.T) {
	m := NewDenseMatrix(2, 2)
	copy(m.Data, []float64{1, 2, 3, 4})

	doubled := MulScalar(m, 2)
	back := MulScalar(doubled, 0.5)

	assert.Equal(t, m.Data, back.Data)
}

func TestSetBlockAssemblesSubmatrix(t *testing.T) {
	big := NewDenseMatrix(4, 4)
	small := NewDenseMatrix(2, 2)
	copy(small.Data, []float64{1, 2, 3, 4})

	big.SetBlock(1, 1, small)

	assert.Equal(t, 1.0, big.At(1, 1))
	assert.Equal(t, 4.0, big.At(2, 2))
	assert.Equal(t, 0.0, big.At(0, 0))
}
