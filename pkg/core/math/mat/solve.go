package mat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/itohio/heavytop/pkg/errs"
)

// SolveLinearSystem solves A·x = b for x via dense LU decomposition with
// partial pivoting (spec.md §4.1's "LAPACK-equivalent general solve"),
// replacing b with x in place the way the spec's in-place contract
// describes. A is left untouched.
//
// The factorization itself is delegated to gonum.org/v1/gonum/mat's
// mat.LU, the dense-linear-algebra collaborator spec.md §1/§6 explicitly
// allows ("any conforming library of dense linear algebra with LU solve
// suffices"); our own DenseMatrix/DenseVector remain the types the rest of
// the core programs against.
func SolveLinearSystem(a DenseMatrix, b DenseVector) error {
	if a.Rows != a.Cols {
		panic("mat.SolveLinearSystem: A must be square")
	}
	if a.Rows != len(b) {
		panic("mat.SolveLinearSystem: dimension mismatch between A and b")
	}

	ga := mat.NewDense(a.Rows, a.Cols, append([]float64(nil), a.Data...))
	gb := mat.NewVecDense(len(b), append([]float64(nil), b...))

	var lu mat.LU
	lu.Factorize(ga)
	if cond := lu.Cond(); cond > 1e14 {
		return fmt.Errorf("%w: iteration matrix is singular to working precision (cond=%g)", errs.ErrNumericFailure, cond)
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, gb); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrNumericFailure, err)
	}

	for i := range b {
		b[i] = x.AtVec(i)
	}
	return nil
}
