// Package state implements the L3 generalized-coordinate state and
// physical-parameter containers of spec.md §3: State, MassMatrix and
// GeneralizedForces.
package state

import (
	"fmt"

	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/errs"
)

// State is the four generalized coordinate/velocity/acceleration vectors
// tracked per time step. For a rigid body, Q has length 7 (position +
// unit quaternion) while V, A, AA have length 6 (linear + angular); a
// purely-linear problem may use equal lengths throughout.
type State struct {
	Q  mat.DenseVector
	V  mat.DenseVector
	A  mat.DenseVector
	AA mat.DenseVector
}

// NewState validates that v, a, aa share one common length and returns a
// State built from defensive copies of the four vectors.
func NewState(q, v, a, aa mat.DenseVector) (State, error) {
	if len(v) != len(a) || len(v) != len(aa) {
		return State{}, fmt.Errorf("%w: v, a and ã must have equal length (got %d, %d, %d)", errs.ErrInvalidArgument, len(v), len(a), len(aa))
	}
	return State{Q: q.Clone(), V: v.Clone(), A: a.Clone(), AA: aa.Clone()}, nil
}

// ZeroRigidBodyState returns the all-zero State for a rigid body with a 7-length
// q (position zero, identity quaternion) and 6-length v/a/ã.
func ZeroRigidBodyState() State {
	q := mat.NewDenseVector(7)
	q[3] = 1 // identity quaternion (q0=1,q1..3=0) in the embedded block
	return State{
		Q:  q,
		V:  mat.NewDenseVector(6),
		A:  mat.NewDenseVector(6),
		AA: mat.NewDenseVector(6),
	}
}

// ZeroLinearState returns an all-zero State whose four vectors share n
// components, for the purely-additive scalar/linear test problems of
// spec.md §8 scenarios 3–4.
func ZeroLinearState(n int) State {
	return State{
		Q:  mat.NewDenseVector(n),
		V:  mat.NewDenseVector(n),
		A:  mat.NewDenseVector(n),
		AA: mat.NewDenseVector(n),
	}
}

// Clone returns a State with independently-owned copies of all four
// vectors (spec.md §5 ownership: operators return freshly owned results).
func (s State) Clone() State {
	return State{Q: s.Q.Clone(), V: s.V.Clone(), A: s.A.Clone(), AA: s.AA.Clone()}
}
