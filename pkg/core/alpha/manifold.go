package alpha

import (
	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/core/math/rotation"
	"github.com/itohio/heavytop/pkg/core/math/vec"
)

// ManifoldUpdate applies a velocity-space increment Δq to the generalized
// coordinate q (spec.md §4.4, §9 "Coordinate update on R³×SO(3)"):
// additive on the position/linear block, exponential-map composition on
// any embedded unit quaternion. len(q) == len(deltaQ) updates purely
// additively (the plain-vector problems of spec.md §8 scenarios 3-4);
// len(q) == len(deltaQ)+1 treats the last 4 components of q as an
// embedded quaternion and the last 3 of deltaQ as its rotation-vector
// increment (the rigid-body case, |q|=7, |Δq|=6).
func ManifoldUpdate(q, deltaQ mat.DenseVector, h float64) mat.DenseVector {
	switch {
	case len(q) == len(deltaQ):
		out := mat.NewDenseVector(len(q))
		for i := range q {
			out[i] = q[i] + h*deltaQ[i]
		}
		return out
	case len(q) == len(deltaQ)+1:
		posLen := len(deltaQ) - 3
		out := mat.NewDenseVector(len(q))
		for i := 0; i < posLen; i++ {
			out[i] = q[i] + h*deltaQ[i]
		}
		current := vec.NewQuaternion(q[posLen], q[posLen+1], q[posLen+2], q[posLen+3])
		omega := vec.NewVector3(deltaQ[posLen]*h, deltaQ[posLen+1]*h, deltaQ[posLen+2]*h)
		composed := current.Product(rotation.FromRotationVector(omega))
		normalized, err := composed.Normalize()
		if err != nil {
			// The embedded block started non-unit (a caller bug); carry the
			// unnormalized composition rather than losing the increment.
			normalized = composed
		}
		out[posLen], out[posLen+1], out[posLen+2], out[posLen+3] = normalized[0], normalized[1], normalized[2], normalized[3]
		return out
	default:
		panic("alpha.ManifoldUpdate: incompatible q/deltaQ lengths")
	}
}
