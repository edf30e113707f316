// Package rotation implements the L2 rotation algebra of spec.md §4.2: the
// exponential/logarithmic maps between a rotation vector and a unit
// quaternion, angle-axis conversions, vector rotation, and the
// quaternion/rotation-matrix bridge. It depends only on pkg/core/math/vec,
// never on the state (L3) or integrator (L4) layers (spec.md §9).
package rotation

import (
	"fmt"
	"math"

	"github.com/itohio/heavytop/pkg/core/math/vec"
	"github.com/itohio/heavytop/pkg/errs"
)

// Matrix is an ordered triple of row vectors.
type Matrix [3]vec.Vector3

// MulVector applies the matrix to v (row-by-vector multiplication).
func (m Matrix) MulVector(v vec.Vector3) vec.Vector3 {
	return vec.Vector3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// FromRotationVector is quaternion_from_rotation_vector: with θ=‖ω‖,
// returns the identity quaternion when θ≈0, else
// (cos(θ/2), (sin(θ/2)/θ)·ω).
func FromRotationVector(omega vec.Vector3) vec.Quaternion {
	theta := omega.Length()
	if vec.CloseTo(theta, 0) {
		return vec.Identity()
	}
	half := theta / 2
	s := math.Sin(half) / theta
	axis := omega.MulC(s)
	return vec.NewQuaternion(math.Cos(half), axis[0], axis[1], axis[2])
}

// ToRotationVector is rotation_vector_from_quaternion: with s=‖(q1,q2,q3)‖,
// returns the zero vector when s≈0, else k·(q1,q2,q3) with
// k = 2·atan2(s,q0)/s.
func ToRotationVector(q vec.Quaternion) vec.Vector3 {
	qv := q.Vector()
	s := qv.Length()
	if vec.CloseTo(s, 0) {
		return vec.Vector3{}
	}
	k := 2 * math.Atan2(s, q.Scalar()) / s
	return qv.MulC(k)
}

// FromAngleAxis is quaternion_from_angle_axis; a is assumed to be a unit
// axis.
func FromAngleAxis(theta float64, a vec.Vector3) vec.Quaternion {
	half := theta / 2
	axis := a.MulC(math.Sin(half))
	return vec.NewQuaternion(math.Cos(half), axis[0], axis[1], axis[2])
}

// ToAngleAxis is angle_axis_from_quaternion: θ=2·atan2(s,q0), wrapped to
// (−π,π]; returns (0,(1,0,0)) for a null rotation.
func ToAngleAxis(q vec.Quaternion) (float64, vec.Vector3) {
	qv := q.Vector()
	s := qv.Length()
	theta := 2 * math.Atan2(s, q.Scalar())
	if vec.CloseTo(theta, 0) {
		return 0, vec.Vector3{1, 0, 0}
	}
	theta = WrapAngleToPi(theta)
	return theta, qv.DivC(s)
}

// Rotate applies q's rotation to v, failing if q is not a unit quaternion.
// Uses the closed-form rotation formula
// v' = (q0²−|qv|²)·v + 2·q0·(qv×v) + 2·qv·(qv·v).
func Rotate(q vec.Quaternion, v vec.Vector3) (vec.Vector3, error) {
	if !q.IsUnit() {
		return vec.Vector3{}, fmt.Errorf("%w: rotate_vector requires a unit quaternion", errs.ErrDomain)
	}
	qv := q.Vector()
	q0 := q.Scalar()
	term1 := v.MulC(q0*q0 - qv.SumSqr())
	term2 := qv.Cross(v).MulC(2 * q0)
	term3 := qv.MulC(2 * qv.Dot(v))
	return term1.Add(term2).Add(term3), nil
}

// ToMatrix is quaternion_to_rotation_matrix; fails unless q is a unit
// quaternion.
func ToMatrix(q vec.Quaternion) (Matrix, error) {
	if !q.IsUnit() {
		return Matrix{}, fmt.Errorf("%w: quaternion_to_rotation_matrix requires a unit quaternion", errs.ErrDomain)
	}
	w, x, y, z := q[0], q[1], q[2], q[3]
	return Matrix{
		vec.NewVector3(1-2*(y*y+z*z), 2*(x*y-z*w), 2*(x*z+y*w)),
		vec.NewVector3(2*(x*y+z*w), 1-2*(x*x+z*z), 2*(y*z-x*w)),
		vec.NewVector3(2*(x*z-y*w), 2*(y*z+x*w), 1-2*(x*x+y*y)),
	}, nil
}

// FromMatrix is rotation_matrix_to_quaternion: a branchless-safe algorithm
// keyed on the trace, falling back to the largest diagonal entry to avoid
// dividing by a small number. When the trace branch is used, q0 ≥ 0.
func FromMatrix(m Matrix) vec.Quaternion {
	trace := m[0][0] + m[1][1] + m[2][2]
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return vec.NewQuaternion(
			0.25*s,
			(m[2][1]-m[1][2])/s,
			(m[0][2]-m[2][0])/s,
			(m[1][0]-m[0][1])/s,
		)
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		return vec.NewQuaternion(
			(m[2][1]-m[1][2])/s,
			0.25*s,
			(m[0][1]+m[1][0])/s,
			(m[0][2]+m[2][0])/s,
		)
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		return vec.NewQuaternion(
			(m[0][2]-m[2][0])/s,
			(m[0][1]+m[1][0])/s,
			0.25*s,
			(m[1][2]+m[2][1])/s,
		)
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		return vec.NewQuaternion(
			(m[1][0]-m[0][1])/s,
			(m[0][2]+m[2][0])/s,
			(m[1][2]+m[2][1])/s,
			0.25*s,
		)
	}
}

// WrapAngleToPi returns θ+2πk ∈ (−π,π] for integer k. The boundary ±π is
// returned unchanged rather than folded onto one sign (spec.md §4.2).
func WrapAngleToPi(theta float64) float64 {
	if vec.CloseTo(theta, math.Pi) || vec.CloseTo(theta, -math.Pi) {
		return theta
	}
	wrapped := math.Mod(theta+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}
