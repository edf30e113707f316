package alpha

import "github.com/itohio/heavytop/pkg/core/math/mat"

// Precondition applies the Bottasso et al. (2008) two-sided diagonal
// scaling J ← DL·J·DR to the saddle-point iteration matrix and its
// matching residual, before the LU solve (spec.md §4.4, §9): DL scales
// the constraint rows (n..n+m) by β·h², and DR scales the constraint
// columns by 1/(β·h²). The residual is scaled by DL only (r ← DL·r). The
// velocity rows/columns span all n of the dynamics block, whatever n is
// for the problem at hand, not a hardcoded 6 — spec.md §9's open
// question about a prior implementation that silently assumed a 6-dof
// rigid body.
//
// Because DR rescales the λ columns, the solved Δλ block comes back in
// DR-scaled units; the caller must divide it by β·h² to recover the true
// multiplier increment (see Integrator.AlphaStep).
func Precondition(j mat.DenseMatrix, r mat.DenseVector, n int, beta, h float64) (mat.DenseMatrix, mat.DenseVector) {
	rowScale := beta * h * h
	colScale := 1.0 / (beta * h * h)
	total := j.Rows

	jOut := j.Clone()
	rOut := r.Clone()

	for row := n; row < total; row++ {
		for col := 0; col < total; col++ {
			jOut.Set(row, col, jOut.At(row, col)*rowScale)
		}
		rOut[row] *= rowScale
	}
	for col := n; col < total; col++ {
		for row := 0; row < total; row++ {
			jOut.Set(row, col, jOut.At(row, col)*colScale)
		}
	}
	return jOut, rOut
}
