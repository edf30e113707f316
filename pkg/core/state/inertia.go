package state

import (
	"fmt"

	"github.com/itohio/heavytop/pkg/errs"
)

// InertiaSolidSphere returns the principal moments (jx,jy,jz) of a solid
// sphere of the given mass and radius: all three equal to
// (2/5)·m·r². Adapted from
// itohio-EasyRobot/pkg/core/math/control/kinematics/rigidbody's
// tensor_helpers.go, rewritten to return the principal-moment vector
// NewMassMatrixFromScalar consumes rather than a dense 3×3 tensor.
func InertiaSolidSphere(mass, radius float64) (jx, jy, jz float64, err error) {
	if mass <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: mass must be > 0, got %g", errs.ErrInvalidArgument, mass)
	}
	if radius <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: radius must be > 0, got %g", errs.ErrInvalidArgument, radius)
	}
	j := 0.4 * mass * radius * radius
	return j, j, j, nil
}

// InertiaSolidCylinder returns the principal moments of a solid cylinder
// of the given mass, radius and height, with the z axis along the
// cylinder's own axis: jz = ½·m·r² (axial), jx = jy = (m/12)·(3r²+h²)
// (radial).
func InertiaSolidCylinder(mass, radius, height float64) (jx, jy, jz float64, err error) {
	if mass <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: mass must be > 0, got %g", errs.ErrInvalidArgument, mass)
	}
	if radius <= 0 || height <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: radius and height must be > 0, got %g, %g", errs.ErrInvalidArgument, radius, height)
	}
	axial := 0.5 * mass * radius * radius
	radial := (mass / 12) * (3*radius*radius + height*height)
	return radial, radial, axial, nil
}

// InertiaBox returns the principal moments of a solid rectangular box of
// the given mass and (width, height, depth) extents along (x,y,z).
func InertiaBox(mass, width, height, depth float64) (jx, jy, jz float64, err error) {
	if mass <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: mass must be > 0, got %g", errs.ErrInvalidArgument, mass)
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return 0, 0, 0, fmt.Errorf("%w: width, height and depth must be > 0, got %g, %g, %g", errs.ErrInvalidArgument, width, height, depth)
	}
	jx = (mass / 12) * (height*height + depth*depth)
	jy = (mass / 12) * (width*width + depth*depth)
	jz = (mass / 12) * (width*width + height*height)
	return jx, jy, jz, nil
}
