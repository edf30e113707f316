// Package alpha implements the L4 generalized-α time integrator of
// spec.md §4.4: the time stepper, the predictor/corrector state machine,
// the manifold-aware coordinate update on R³×SO(3), the optional Bottasso
// preconditioner, and the Integrate driver. It depends only on the
// function-value residual/iteration-matrix contracts of L3 (spec.md §9),
// never on a concrete problem assembler.
package alpha

import (
	"fmt"

	"github.com/itohio/heavytop/pkg/errs"
)

// Constants are the four generalized-α parameters.
type Constants struct {
	AlphaF float64
	AlphaM float64
	Beta   float64
	Gamma  float64
}

// DefaultConstants returns the trapezoidal-like, neutral-damping defaults
// (αf,αm,β,γ) = (0.5,0.5,0.25,0.5).
func DefaultConstants() Constants {
	return Constants{AlphaF: 0.5, AlphaM: 0.5, Beta: 0.25, Gamma: 0.5}
}

// NewConstants validates αf∈[0,1], αm∈[0,1], β∈[0,0.5], γ∈[0,1].
func NewConstants(alphaF, alphaM, beta, gamma float64) (Constants, error) {
	c := Constants{AlphaF: alphaF, AlphaM: alphaM, Beta: beta, Gamma: gamma}
	if alphaF < 0 || alphaF > 1 {
		return Constants{}, fmt.Errorf("%w: alphaF must be in [0,1], got %g", errs.ErrInvalidArgument, alphaF)
	}
	if alphaM < 0 || alphaM > 1 {
		return Constants{}, fmt.Errorf("%w: alphaM must be in [0,1], got %g", errs.ErrInvalidArgument, alphaM)
	}
	if beta < 0 || beta > 0.5 {
		return Constants{}, fmt.Errorf("%w: beta must be in [0,0.5], got %g", errs.ErrInvalidArgument, beta)
	}
	if gamma < 0 || gamma > 1 {
		return Constants{}, fmt.Errorf("%w: gamma must be in [0,1], got %g", errs.ErrInvalidArgument, gamma)
	}
	return c, nil
}

// BetaPrime is β′ = (1−αm) / (h²·β·(1−αf)).
func (c Constants) BetaPrime(h float64) float64 {
	return (1 - c.AlphaM) / (h * h * c.Beta * (1 - c.AlphaF))
}

// GammaPrime is γ′ = γ / (h·β).
func (c Constants) GammaPrime(h float64) float64 {
	return c.Gamma / (h * c.Beta)
}
