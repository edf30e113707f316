// Package errs collects the sentinel errors surfaced by the integrator
// core, grouped by the taxonomy in spec.md §7.
package errs

import "errors"

var (
	// ErrInvalidArgument marks a construction-time parameter out of range:
	// integrator constants outside their valid interval, a mass/inertia
	// matrix of the wrong shape, a non-positive mass or moment of inertia.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain marks a rotation action requested against state that
	// violates a mathematical precondition: rotating by a non-unit
	// quaternion, normalizing a zero-length quaternion.
	ErrDomain = errors.New("domain error")

	// ErrIndexOutOfRange marks quaternion/vector component access beyond
	// bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNumericFailure marks a singular system encountered by
	// solve_linear_system, propagated out of Integrate.
	ErrNumericFailure = errors.New("numeric failure")
)
