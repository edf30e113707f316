package state

import (
	"fmt"

	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/errs"
)

// MassMatrix is a 6×6 symmetric positive-definite dense matrix, typically
// block-diagonal diag(m·I₃, J).
type MassMatrix struct {
	M mat.DenseMatrix
}

// NewMassMatrixFromScalar builds diag(m·I₃, diag(jx,jy,jz)), failing when
// mass or any principal moment is not strictly positive.
func NewMassMatrixFromScalar(mass float64, jx, jy, jz float64) (MassMatrix, error) {
	if mass <= 0 {
		return MassMatrix{}, fmt.Errorf("%w: mass must be > 0, got %g", errs.ErrInvalidArgument, mass)
	}
	for name, j := range map[string]float64{"jx": jx, "jy": jy, "jz": jz} {
		if j <= 0 {
			return MassMatrix{}, fmt.Errorf("%w: principal moment %s must be > 0, got %g", errs.ErrInvalidArgument, name, j)
		}
	}
	m := mat.NewDenseMatrix(6, 6)
	m.Set(0, 0, mass)
	m.Set(1, 1, mass)
	m.Set(2, 2, mass)
	m.Set(3, 3, jx)
	m.Set(4, 4, jy)
	m.Set(5, 5, jz)
	return MassMatrix{M: m}, nil
}

// NewMassMatrixFromMatrix wraps a caller-supplied 6×6 matrix, failing when
// its extents differ from 6×6.
func NewMassMatrixFromMatrix(m mat.DenseMatrix) (MassMatrix, error) {
	if m.Rows != 6 || m.Cols != 6 {
		return MassMatrix{}, fmt.Errorf("%w: mass matrix must be 6x6, got %dx%d", errs.ErrInvalidArgument, m.Rows, m.Cols)
	}
	return MassMatrix{M: m.Clone()}, nil
}

// Inertia returns the (Jx,Jy,Jz) diagonal of the rotational block.
func (mm MassMatrix) Inertia() [3]float64 {
	return [3]float64{mm.M.At(3, 3), mm.M.At(4, 4), mm.M.At(5, 5)}
}

// GeneralizedForces is a length-6 dense vector [force(3); moment(3)].
type GeneralizedForces struct {
	G mat.DenseVector
}

func NewGeneralizedForces(force, moment [3]float64) GeneralizedForces {
	return GeneralizedForces{G: mat.DenseVectorFrom(force[0], force[1], force[2], moment[0], moment[1], moment[2])}
}

// NewGeneralizedForcesFromVector wraps an explicit length-6 vector, failing
// when its length differs from 6.
func NewGeneralizedForcesFromVector(g mat.DenseVector) (GeneralizedForces, error) {
	if len(g) != 6 {
		return GeneralizedForces{}, fmt.Errorf("%w: generalized forces must have length 6, got %d", errs.ErrInvalidArgument, len(g))
	}
	return GeneralizedForces{G: g.Clone()}, nil
}
