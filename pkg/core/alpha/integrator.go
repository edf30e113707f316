package alpha

import (
	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/core/state"
	"github.com/itohio/heavytop/pkg/logger"
)

// ConvergenceTolerance is the ℓ² residual norm below which a Newton
// iteration is accepted (spec.md §4.4, §8).
const ConvergenceTolerance = 1e-4

// ResidualFunc is the pluggable residual(q, v, v̇, λ) → ℝⁿ⁺ᵐ contract a
// problem assembler (heavytop.Body and friends) must satisfy.
type ResidualFunc func(q, v, vdot, lambda mat.DenseVector) (mat.DenseVector, error)

// IterationMatrixFunc is the pluggable
// iteration_matrix(β′, γ′, q, v, λ, h, Δq) contract a problem assembler
// must satisfy.
type IterationMatrixFunc func(betaPrime, gammaPrime float64, q, v, lambda mat.DenseVector, h float64, deltaQ mat.DenseVector) (mat.DenseMatrix, error)

// Integrator drives the generalized-α predictor/corrector over a series
// of time steps, delegating the physics to a Residual/IterationMatrix
// pair and leaving the coordinate manifold update to ManifoldUpdate.
type Integrator struct {
	Constants
	stepper      *Stepper
	precondition bool
}

// NewIntegrator builds an Integrator from its four constants, a time
// stepper, and whether to apply the two-sided Bottasso preconditioner.
func NewIntegrator(c Constants, stepper *Stepper, precondition bool) *Integrator {
	return &Integrator{Constants: c, stepper: stepper, precondition: precondition}
}

func (in *Integrator) CurrentTime() float64 { return in.stepper.CurrentTime() }
func (in *Integrator) Iterations() int      { return in.stepper.Iterations() }
func (in *Integrator) TotalIterations() int { return in.stepper.TotalIterations() }
func (in *Integrator) MaxIterations() int   { return in.stepper.MaxIterations() }

// AlphaStep advances one State/λ pair by one step of size h (spec.md
// §4.4): predict, then Newton-correct until the residual ℓ² norm falls
// below ConvergenceTolerance or MaxIterations is exhausted (in which case
// the last iterate is returned along with a warning, never an error —
// non-convergence is not a failure). No convergence flag is returned or
// stored; the warning log line is the only signal of exhaustion.
func (in *Integrator) AlphaStep(cur state.State, lambda mat.DenseVector, residual ResidualFunc, iterMat IterationMatrixFunc) (state.State, mat.DenseVector, error) {
	h := in.stepper.StepSize()
	n := len(cur.V)

	betaPrime := in.BetaPrime(h)
	gammaPrime := in.GammaPrime(h)

	// Predictor (spec.md §4.4): extrapolate ã forward, seed the
	// velocity-space increment from the Newmark prediction
	// Δq = v + h·(½−β)·ã + h·β·ã_next, and reset the true acceleration to
	// zero — it is the Newton loop's job to find it, not carry the
	// previous step's value forward.
	aaNext := mat.NewDenseVector(n)
	for i := 0; i < n; i++ {
		aaNext[i] = (in.AlphaF*cur.A[i] - in.AlphaM*cur.AA[i]) / (1 - in.AlphaM)
	}
	vNext := mat.NewDenseVector(n)
	for i := 0; i < n; i++ {
		vNext[i] = cur.V[i] + h*(1-in.Gamma)*cur.AA[i] + h*in.Gamma*aaNext[i]
	}
	aNext := mat.NewDenseVector(n)
	lambdaNext := lambda.Clone()
	deltaQ := mat.NewDenseVector(n)
	for i := 0; i < n; i++ {
		deltaQ[i] = cur.V[i] + h*(0.5-in.Beta)*cur.AA[i] + h*in.Beta*aaNext[i]
	}

	qNext := cur.Q.Clone()

	for iter := 0; iter < in.stepper.MaxIterations(); iter++ {
		in.stepper.RecordIteration()

		qNext = ManifoldUpdate(cur.Q, deltaQ, h)

		r, err := residual(qNext, vNext, aNext, lambdaNext)
		if err != nil {
			return state.State{}, nil, err
		}
		if mat.NormVec(r) < ConvergenceTolerance {
			break
		}

		j, err := iterMat(betaPrime, gammaPrime, qNext, vNext, lambdaNext, h, deltaQ)
		if err != nil {
			return state.State{}, nil, err
		}

		if in.precondition {
			j, r = Precondition(j, r, n, in.Beta, h)
		}

		rhs := mat.MulVecScalar(r, -1)
		if err := mat.SolveLinearSystem(j, rhs); err != nil {
			return state.State{}, nil, err
		}

		dqVel := rhs[:n]
		dLambda := rhs[n:]
		if in.precondition {
			dLambda = mat.MulVecScalar(dLambda, 1/(in.Beta*h*h))
		}

		deltaQ = mat.AddVec(deltaQ, dqVel)
		aNext = mat.AddVec(aNext, mat.MulVecScalar(dqVel, betaPrime))
		vNext = mat.AddVec(vNext, mat.MulVecScalar(dqVel, gammaPrime))
		lambdaNext = mat.AddVec(lambdaNext, dLambda)

		if iter == in.stepper.MaxIterations()-1 {
			logger.Log.Warning().
				Int("iterations", in.stepper.MaxIterations()).
				Float64("time", in.stepper.CurrentTime()).
				Msg("generalized-alpha step did not converge within max iterations")
		}
	}

	// Close the step: fold the corrected true acceleration back into the
	// algorithmic acceleration (spec.md §4.4); q is NOT re-applied here,
	// it remains the last manifold_update computed inside the loop above.
	aaClosed := mat.NewDenseVector(n)
	for i := 0; i < n; i++ {
		aaClosed[i] = ((1-in.AlphaF)*aNext[i] + in.AlphaF*cur.A[i] - in.AlphaM*cur.AA[i]) / (1 - in.AlphaM)
	}

	next, err := state.NewState(qNext, vNext, aNext, aaClosed)
	if err != nil {
		return state.State{}, nil, err
	}
	return next, lambdaNext, nil
}

// Integrate drives the stepper through its full schedule, returning the
// state history of length NumSteps()+1 (the initial state followed by
// one entry per completed step).
func (in *Integrator) Integrate(initial state.State, initialLambda mat.DenseVector, residual ResidualFunc, iterMat IterationMatrixFunc) ([]state.State, error) {
	history := make([]state.State, 0, in.stepper.NumSteps()+1)
	history = append(history, initial)

	cur := initial
	lambda := initialLambda
	for i := 0; i < in.stepper.NumSteps(); i++ {
		in.stepper.AdvanceTimeStep()

		next, nextLambda, err := in.AlphaStep(cur, lambda, residual, iterMat)
		if err != nil {
			return history, err
		}
		history = append(history, next)
		cur = next
		lambda = nextLambda
	}
	return history, nil
}
