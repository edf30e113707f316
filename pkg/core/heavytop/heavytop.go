// Package heavytop assembles the residual and iteration matrix for the
// heavy-top benchmark problem (spec.md §4.3): a rigid body suspended from a
// fixed pivot by a rigid, massless arm, under gravity. It depends on L1
// (mat) and L2 (vec/rotation) and on the L3 state containers, but never on
// the L4 integrator — the integrator instead consumes this package's
// Residual/IterationMatrix methods through the plain function-value
// contracts of spec.md §9 ("Cyclic dependency avoidance").
package heavytop

import (
	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/core/math/rotation"
	"github.com/itohio/heavytop/pkg/core/math/vec"
	"github.com/itohio/heavytop/pkg/core/state"
)

// Body is the heavy top's physical description: mass/inertia, the
// body-frame offset from the fixed pivot to the center of mass, and the
// generalized forces acting on it (typically gravity resolved to the COM
// frame).
type Body struct {
	Mass   state.MassMatrix
	Offset vec.Vector3 // X: body-frame pivot→COM offset
	Forces state.GeneralizedForces
}

func NewBody(mass state.MassMatrix, offset vec.Vector3, forces state.GeneralizedForces) Body {
	return Body{Mass: mass, Offset: offset, Forces: forces}
}

// NumConstraints is m in spec.md §4.4: the heavy top's pivot constraint is
// three scalar equations (the arm tip must coincide with the fixed pivot).
const NumConstraints = 3

func quaternionOf(q mat.DenseVector) vec.Quaternion {
	return vec.NewQuaternion(q[3], q[4], q[5], q[6])
}

func positionOf(q mat.DenseVector) vec.Vector3 {
	return vec.NewVector3(q[0], q[1], q[2])
}

// constraintValue is Φ(q) = R(q)·X - r: the inertial-frame position of the
// COM implied by rotating the fixed arm X about the origin, minus the
// COM's actual position. Its gradient w.r.t. the velocity-space increment
// is exactly ConstraintGradient below.
func (b Body) constraintValue(q mat.DenseVector) (vec.Vector3, rotation.Matrix, error) {
	r, err := rotation.ToMatrix(quaternionOf(q))
	if err != nil {
		return vec.Vector3{}, rotation.Matrix{}, err
	}
	phi := r.MulVector(b.Offset).Sub(positionOf(q))
	return phi, r, nil
}

// ConstraintGradient is B(q) = [−I₃ | −R·⌊X⌋], the 3×6 Jacobian of the
// pivot constraint.
func (b Body) ConstraintGradient(r rotation.Matrix) mat.DenseMatrix {
	rSkewX := mat.Mul(matrixOf(r), mat.CrossProductMatrix(b.Offset))
	out := mat.NewDenseMatrix(3, 6)
	for i := 0; i < 3; i++ {
		out.Set(i, i, -1)
		for j := 0; j < 3; j++ {
			out.Set(i, 3+j, -rSkewX.At(i, j))
		}
	}
	return out
}

func matrixOf(r rotation.Matrix) mat.DenseMatrix {
	m := mat.NewDenseMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r[i][j])
		}
	}
	return m
}

// tangentDamping is Cₜ, 6×6 with only the lower-right 3×3 block nonzero:
// ⌊Ω⌋·J − ⌊J·Ω⌋.
func (b Body) tangentDamping(omega vec.Vector3) mat.DenseMatrix {
	j := b.inertiaMatrix()
	omegaSkew := mat.CrossProductMatrix(omega)
	jOmega := mat.MulVec(j, mat.DenseVector(omega[:]))
	block := mat.Sub(mat.Mul(omegaSkew, j), mat.CrossProductMatrix([3]float64{jOmega[0], jOmega[1], jOmega[2]}))
	out := mat.NewDenseMatrix(6, 6)
	out.SetBlock(3, 3, block)
	return out
}

// tangentStiffness is Kₜ, 6×6 with only the lower-right 3×3 block
// nonzero: ⌊X⌋·⌊Rᵀ·λ⌋.
func (b Body) tangentStiffness(r rotation.Matrix, lambda mat.DenseVector) mat.DenseMatrix {
	rt := mat.Transpose(matrixOf(r))
	rtLambda := mat.MulVec(rt, lambda)
	block := mat.Mul(mat.CrossProductMatrix(b.Offset), mat.CrossProductMatrix([3]float64{rtLambda[0], rtLambda[1], rtLambda[2]}))
	out := mat.NewDenseMatrix(6, 6)
	out.SetBlock(3, 3, block)
	return out
}

func (b Body) inertiaMatrix() mat.DenseMatrix {
	j := mat.NewDenseMatrix(3, 3)
	for i := 0; i < 3; i++ {
		j.Set(i, i, b.Mass.M.At(3+i, 3+i))
	}
	return j
}

// Residual implements the pluggable residual(q, v, v̇, λ) → ℝⁿ⁺ᵐ contract
// of spec.md §4.3: the top 6 rows are M·v̇ + g + Bᵀ·λ, the bottom 3 rows
// are the pivot constraint Φ(q).
func (b Body) Residual(q, v, vdot, lambda mat.DenseVector) (mat.DenseVector, error) {
	phi, r, err := b.constraintValue(q)
	if err != nil {
		return nil, err
	}
	bGrad := b.ConstraintGradient(r)
	bt := mat.Transpose(bGrad)

	dynamics := mat.AddVec(mat.AddVec(mat.MulVec(b.Mass.M, vdot), b.Forces.G), mat.MulVec(bt, lambda))

	out := mat.NewDenseVector(6 + NumConstraints)
	copy(out[:6], dynamics)
	copy(out[6:], phi[:])
	return out, nil
}

// IterationMatrix implements the pluggable
// iteration_matrix(β′, γ′, q, v, λ, h, Δq) → ℝ^(n+m)×(n+m) contract of
// spec.md §4.3:
//
//	J = [ [ M·β′ + Cₜ·γ′ + Kₜ , Bᵀ ], [ B, 0 ] ]
//
// h and Δq are accepted to satisfy the shared signature but are unused by
// the heavy top's own linearization.
func (b Body) IterationMatrix(betaPrime, gammaPrime float64, q, v, lambda mat.DenseVector, h float64, deltaQ mat.DenseVector) (mat.DenseMatrix, error) {
	_, r, err := b.constraintValue(q)
	if err != nil {
		return mat.DenseMatrix{}, err
	}
	omega := vec.NewVector3(v[3], v[4], v[5])

	bGrad := b.ConstraintGradient(r)
	bt := mat.Transpose(bGrad)
	ct := b.tangentDamping(omega)
	kt := b.tangentStiffness(r, lambda)

	topLeft := mat.Add(mat.Add(mat.MulScalar(b.Mass.M, betaPrime), mat.MulScalar(ct, gammaPrime)), kt)

	n := 6 + NumConstraints
	out := mat.NewDenseMatrix(n, n)
	out.SetBlock(0, 0, topLeft)
	out.SetBlock(0, 6, bt)
	out.SetBlock(6, 0, bGrad)
	return out, nil
}
