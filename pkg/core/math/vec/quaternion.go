package vec

import (
	"fmt"
	"math"

	"github.com/itohio/heavytop/pkg/errs"
)

// Tolerance is the ε used throughout L2 for unit-length and closeness
// tests (spec.md §4.2 close_to, §3 unit-quaternion invariant).
const Tolerance = 1e-6

// Quaternion is a unit-convention-agnostic four-component quaternion with
// q0 the scalar part and (q1,q2,q3) the vector part, matching spec.md §3's
// ordering rather than the teacher's x,y,z,w layout.
type Quaternion [4]float64

// Identity is the identity quaternion (1,0,0,0).
func Identity() Quaternion {
	return Quaternion{1, 0, 0, 0}
}

func NewQuaternion(q0, q1, q2, q3 float64) Quaternion {
	return Quaternion{q0, q1, q2, q3}
}

func (q Quaternion) Scalar() float64 {
	return q[0]
}

// Vector returns the (q1,q2,q3) vector part.
func (q Quaternion) Vector() Vector3 {
	return Vector3{q[1], q[2], q[3]}
}

// Component returns the i-th component (0..3), failing for any other index.
func (q Quaternion) Component(i int) (float64, error) {
	if i < 0 || i > 3 {
		return 0, fmt.Errorf("%w: quaternion component %d", errs.ErrIndexOutOfRange, i)
	}
	return q[i], nil
}

func (q Quaternion) SumSqr() float64 {
	return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
}

func (q Quaternion) Length() float64 {
	return math.Sqrt(q.SumSqr())
}

// IsUnit reports whether ‖q‖ is within Tolerance of 1.
func (q Quaternion) IsUnit() bool {
	return CloseTo(q.Length(), 1)
}

// Normalize returns q/‖q‖, failing when ‖q‖ is too close to zero to
// normalize meaningfully.
func (q Quaternion) Normalize() (Quaternion, error) {
	l := q.Length()
	if CloseTo(l, 0) {
		return Quaternion{}, fmt.Errorf("%w: cannot normalize near-zero quaternion", errs.ErrDomain)
	}
	return Quaternion{q[0] / l, q[1] / l, q[2] / l, q[3] / l}, nil
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q[0], -q[1], -q[2], -q[3]}
}

// Inverse returns conjugate(q) / ‖q‖².
func (q Quaternion) Inverse() (Quaternion, error) {
	s := q.SumSqr()
	if CloseTo(s, 0) {
		return Quaternion{}, fmt.Errorf("%w: cannot invert near-zero quaternion", errs.ErrDomain)
	}
	c := q.Conjugate()
	return Quaternion{c[0] / s, c[1] / s, c[2] / s, c[3] / s}, nil
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q[0] + o[0], q[1] + o[1], q[2] + o[2], q[3] + o[3]}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q[0] - o[0], q[1] - o[1], q[2] - o[2], q[3] - o[3]}
}

func (q Quaternion) MulC(c float64) Quaternion {
	return Quaternion{q[0] * c, q[1] * c, q[2] * c, q[3] * c}
}

func (q Quaternion) DivC(c float64) Quaternion {
	if c == 0 {
		panic("vec.Quaternion.DivC: divide by zero")
	}
	return q.MulC(1 / c)
}

// Product is the Hamilton product q·o.
func (q Quaternion) Product(o Quaternion) Quaternion {
	return Quaternion{
		q[0]*o[0] - q[1]*o[1] - q[2]*o[2] - q[3]*o[3],
		q[0]*o[1] + q[1]*o[0] + q[2]*o[3] - q[3]*o[2],
		q[0]*o[2] - q[1]*o[3] + q[2]*o[0] + q[3]*o[1],
		q[0]*o[3] + q[1]*o[2] - q[2]*o[1] + q[3]*o[0],
	}
}

// CloseTo reports |a-b| < Tolerance (spec.md §4.2 close_to).
func CloseTo(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
