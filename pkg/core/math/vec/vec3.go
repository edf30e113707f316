// Package vec implements the ℝ³/quaternion algebra of the rotation layer
// (spec L2): fixed-size value types with value-receiver arithmetic, adapted
// from itohio-EasyRobot/pkg/core/math/vec to float64 and to the problem's
// scalar-first quaternion convention.
package vec

import "math"

// Vector3 is an immutable-by-convention 3-vector: x, y, z.
type Vector3 [3]float64

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) XYZ() (float64, float64, float64) {
	return v[0], v[1], v[2]
}

func (v Vector3) SumSqr() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.SumSqr())
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

func (v Vector3) MulC(c float64) Vector3 {
	return Vector3{v[0] * c, v[1] * c, v[2] * c}
}

func (v Vector3) DivC(c float64) Vector3 {
	if c == 0 {
		panic("vec.Vector3.DivC: divide by zero")
	}
	return v.MulC(1 / c)
}

func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Unit returns v scaled to unit length; panics on zero length (unlike
// Quaternion.Normalize, which returns an error for degenerate input).
func (v Vector3) Unit() Vector3 {
	l := v.Length()
	if l == 0 {
		panic("vec.Vector3.Unit: zero length")
	}
	return v.DivC(l)
}
