// Package config loads a heavy-top scenario description from YAML,
// mirroring cmd/spectrometer/internal/config's file-extension-driven
// loader but narrowed to the one format the integrator's scenarios ship
// in (spec.md §6 "External Interfaces").
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/heavytop/pkg/core/state"
	"github.com/itohio/heavytop/pkg/errs"
)

// Vector3 is the YAML-friendly mirror of vec.Vector3.
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Shape picks one of the canonical solids state's inertia helpers
// construct, letting a scenario specify dimensions instead of raw
// principal moments. Empty (the zero value) means "use Ixx/Iyy/Izz
// directly".
type Shape struct {
	Kind   string  `yaml:"kind"` // "sphere", "cylinder", "box", or "" for explicit Ixx/Iyy/Izz
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
}

// Body describes the heavy top's physical parameters. Either Shape names
// a canonical solid (sphere/cylinder/box) the principal moments are
// derived from, or Ixx/Iyy/Izz are given directly.
type Body struct {
	Mass    float64 `yaml:"mass"`
	Shape   Shape   `yaml:"shape"`
	Ixx     float64 `yaml:"ixx"`
	Iyy     float64 `yaml:"iyy"`
	Izz     float64 `yaml:"izz"`
	Offset  Vector3 `yaml:"offset"`
	Gravity Vector3 `yaml:"gravity"`
}

// PrincipalMoments resolves (jx,jy,jz) either from Shape, when its Kind
// names a canonical solid, or from the explicit Ixx/Iyy/Izz fields.
func (b Body) PrincipalMoments() (jx, jy, jz float64, err error) {
	switch b.Shape.Kind {
	case "":
		return b.Ixx, b.Iyy, b.Izz, nil
	case "sphere":
		return state.InertiaSolidSphere(b.Mass, b.Shape.Radius)
	case "cylinder":
		return state.InertiaSolidCylinder(b.Mass, b.Shape.Radius, b.Shape.Height)
	case "box":
		return state.InertiaBox(b.Mass, b.Shape.Width, b.Shape.Height, b.Shape.Depth)
	default:
		return 0, 0, 0, fmt.Errorf("%w: unknown body shape kind %q", errs.ErrInvalidArgument, b.Shape.Kind)
	}
}

// Constants mirrors alpha.Constants for YAML round-tripping.
type Constants struct {
	AlphaF float64 `yaml:"alpha_f"`
	AlphaM float64 `yaml:"alpha_m"`
	Beta   float64 `yaml:"beta"`
	Gamma  float64 `yaml:"gamma"`
}

// Stepper mirrors the parameters alpha.NewStepper needs.
type Stepper struct {
	T0            float64 `yaml:"t0"`
	H             float64 `yaml:"h"`
	NumSteps      int     `yaml:"num_steps"`
	MaxIterations int     `yaml:"max_iterations"`
}

// InitialState carries the scenario's starting generalized coordinate,
// velocity, acceleration, algorithmic acceleration and multiplier.
type InitialState struct {
	Q      []float64 `yaml:"q"`
	V      []float64 `yaml:"v"`
	A      []float64 `yaml:"a"`
	AA     []float64 `yaml:"aa"`
	Lambda []float64 `yaml:"lambda"`
}

// Scenario is the top-level YAML document describing one heavy-top run.
type Scenario struct {
	Body         Body         `yaml:"body"`
	Constants    Constants    `yaml:"constants"`
	Stepper      Stepper      `yaml:"stepper"`
	Precondition bool         `yaml:"precondition"`
	Initial      InitialState `yaml:"initial"`
}

// Load reads and parses a Scenario from path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: reading scenario file: %v", errs.ErrInvalidArgument, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("%w: parsing scenario yaml: %v", errs.ErrInvalidArgument, err)
	}
	return s, nil
}
