// Package mat implements the dense linear-algebra kernels of spec L1:
// fixed-extent vector/matrix containers and the elementary operations
// listed in spec.md §4.1. Adapted from itohio-EasyRobot/pkg/core/math/mat's
// flat row-major Matrix struct, rewritten to float64 and to own its
// elementary ops as free functions returning freshly allocated results
// (spec.md §4.1 contract: "none mutate inputs unless stated").
package mat

import "math"

// DenseVector is a semantic container of real values indexed by one
// nonnegative integer, with a fixed extent set at construction.
type DenseVector []float64

func NewDenseVector(n int) DenseVector {
	return make(DenseVector, n)
}

func DenseVectorFrom(values ...float64) DenseVector {
	v := make(DenseVector, len(values))
	copy(v, values)
	return v
}

func (v DenseVector) Clone() DenseVector {
	out := make(DenseVector, len(v))
	copy(out, v)
	return out
}

// DenseMatrix is a row-major dense matrix of fixed extent (Rows × Cols).
type DenseMatrix struct {
	Rows, Cols int
	Data       []float64
}

func NewDenseMatrix(rows, cols int) DenseMatrix {
	return DenseMatrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

func (m DenseMatrix) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

func (m DenseMatrix) Set(row, col int, val float64) {
	m.Data[row*m.Cols+col] = val
}

func (m DenseMatrix) Clone() DenseMatrix {
	out := NewDenseMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// SetBlock copies src into m starting at (row, col); used to assemble the
// heavy top's block-structured iteration matrix (spec.md §4.3).
func (m DenseMatrix) SetBlock(row, col int, src DenseMatrix) {
	for i := 0; i < src.Rows; i++ {
		for j := 0; j < src.Cols; j++ {
			m.Set(row+i, col+j, src.At(i, j))
		}
	}
}

// Identity returns the n×n identity matrix.
func Identity(n int) DenseMatrix {
	m := NewDenseMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// CrossProductMatrix returns the 3×3 skew-symmetric matrix ⌊v⌋ such that
// ⌊v⌋·w = v×w (spec.md §4.1).
func CrossProductMatrix(v [3]float64) DenseMatrix {
	m := NewDenseMatrix(3, 3)
	m.Set(0, 1, -v[2])
	m.Set(0, 2, v[1])
	m.Set(1, 0, v[2])
	m.Set(1, 2, -v[0])
	m.Set(2, 0, -v[1])
	m.Set(2, 1, v[0])
	return m
}

// Transpose returns a freshly allocated transpose of m.
func Transpose(m DenseMatrix) DenseMatrix {
	out := NewDenseMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// MulVec computes m·v.
func MulVec(m DenseMatrix, v DenseVector) DenseVector {
	if m.Cols != len(v) {
		panic("mat.MulVec: dimension mismatch")
	}
	out := NewDenseVector(m.Rows)
	for i := 0; i < m.Rows; i++ {
		var sum float64
		for j := 0; j < m.Cols; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}

// Mul computes a·b.
func Mul(a, b DenseMatrix) DenseMatrix {
	if a.Cols != b.Rows {
		panic("mat.Mul: dimension mismatch")
	}
	out := NewDenseMatrix(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out.Set(i, j, out.At(i, j)+aik*b.At(k, j))
			}
		}
	}
	return out
}

// MulScalar computes m·c.
func MulScalar(m DenseMatrix, c float64) DenseMatrix {
	out := m.Clone()
	for i := range out.Data {
		out.Data[i] *= c
	}
	return out
}

// Add computes a+b.
func Add(a, b DenseMatrix) DenseMatrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("mat.Add: dimension mismatch")
	}
	out := a.Clone()
	for i := range out.Data {
		out.Data[i] += b.Data[i]
	}
	return out
}

// Sub computes a-b.
func Sub(a, b DenseMatrix) DenseMatrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("mat.Sub: dimension mismatch")
	}
	out := a.Clone()
	for i := range out.Data {
		out.Data[i] -= b.Data[i]
	}
	return out
}

// AddVec computes a+b for dense vectors.
func AddVec(a, b DenseVector) DenseVector {
	if len(a) != len(b) {
		panic("mat.AddVec: dimension mismatch")
	}
	out := make(DenseVector, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// SubVec computes a-b for dense vectors.
func SubVec(a, b DenseVector) DenseVector {
	if len(a) != len(b) {
		panic("mat.SubVec: dimension mismatch")
	}
	out := make(DenseVector, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// NormVec is the Euclidean (ℓ²) norm of v.
func NormVec(v DenseVector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// MulVecScalar computes v·c.
func MulVecScalar(v DenseVector, c float64) DenseVector {
	out := make(DenseVector, len(v))
	for i := range v {
		out[i] = v[i] * c
	}
	return out
}
