// Command heavytop runs a generalized-α heavy-top simulation from a YAML
// scenario file and logs a per-step summary, mirroring
// cmd/spectrometer's flag-driven entry point pattern scaled down to the
// integrator's one job.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/itohio/heavytop/pkg/config"
	"github.com/itohio/heavytop/pkg/core/alpha"
	"github.com/itohio/heavytop/pkg/core/heavytop"
	"github.com/itohio/heavytop/pkg/core/math/mat"
	"github.com/itohio/heavytop/pkg/core/math/vec"
	"github.com/itohio/heavytop/pkg/core/state"
	"github.com/itohio/heavytop/pkg/logger"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: heavytop -scenario scenario.yaml")
		os.Exit(1)
	}

	if err := run(*scenarioPath); err != nil {
		logger.Log.Error().Err(err).Msg("heavytop run failed")
		os.Exit(1)
	}
}

func run(path string) error {
	scenario, err := config.Load(path)
	if err != nil {
		return err
	}

	body := heavytop.NewBody(
		mustMassMatrix(scenario),
		vec.NewVector3(scenario.Body.Offset.X, scenario.Body.Offset.Y, scenario.Body.Offset.Z),
		state.NewGeneralizedForces(
			[3]float64{scenario.Body.Mass * scenario.Body.Gravity.X, scenario.Body.Mass * scenario.Body.Gravity.Y, scenario.Body.Mass * scenario.Body.Gravity.Z},
			[3]float64{0, 0, 0},
		),
	)

	constants, err := alpha.NewConstants(scenario.Constants.AlphaF, scenario.Constants.AlphaM, scenario.Constants.Beta, scenario.Constants.Gamma)
	if err != nil {
		return err
	}
	stepper, err := alpha.NewStepper(scenario.Stepper.T0, scenario.Stepper.H, scenario.Stepper.NumSteps, scenario.Stepper.MaxIterations)
	if err != nil {
		return err
	}
	integrator := alpha.NewIntegrator(constants, stepper, scenario.Precondition)

	initial, err := state.NewState(
		mat.DenseVectorFrom(scenario.Initial.Q...),
		mat.DenseVectorFrom(scenario.Initial.V...),
		mat.DenseVectorFrom(scenario.Initial.A...),
		mat.DenseVectorFrom(scenario.Initial.AA...),
	)
	if err != nil {
		return err
	}
	lambda := mat.DenseVectorFrom(scenario.Initial.Lambda...)

	history, err := integrator.Integrate(initial, lambda, body.Residual, body.IterationMatrix)
	if err != nil {
		logger.Log.Warning().Err(err).Msg("integration stopped early")
	}

	for i, s := range history {
		logger.Log.Info().
			Int("step", i).
			Floats64("q", s.Q).
			Floats64("v", s.V).
			Msg("state")
	}
	return err
}

func mustMassMatrix(scenario config.Scenario) state.MassMatrix {
	jx, jy, jz, err := scenario.Body.PrincipalMoments()
	if err != nil {
		logger.Log.Error().Err(err).Msg("invalid body shape in scenario, aborting")
		os.Exit(1)
	}
	mm, err := state.NewMassMatrixFromScalar(scenario.Body.Mass, jx, jy, jz)
	if err != nil {
		logger.Log.Error().Err(err).Msg("invalid mass matrix in scenario, aborting")
		os.Exit(1)
	}
	return mm
}
