package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInertiaSolidSphere(t *testing.T) {
	jx, jy, jz, err := InertiaSolidSphere(5, 2)

	require.NoError(t, err)
	want := 0.4 * 5 * 2 * 2
	assert.InDelta(t, want, jx, 1e-12)
	assert.InDelta(t, want, jy, 1e-12)
	assert.InDelta(t, want, jz, 1e-12)
}

func TestInertiaSolidSphere_RejectsNonPositive(t *testing.T) {
	_, _, _, err := InertiaSolidSphere(0, 2)
	assert.Error(t, err)

	_, _, _, err = InertiaSolidSphere(5, -1)
	assert.Error(t, err)
}

func TestInertiaSolidCylinder(t *testing.T) {
	jx, jy, jz, err := InertiaSolidCylinder(3, 1, 2)

	require.NoError(t, err)
	wantAxial := 0.5 * 3 * 1 * 1
	wantRadial := (3.0 / 12) * (3*1*1 + 2*2)
	assert.InDelta(t, wantRadial, jx, 1e-12)
	assert.InDelta(t, wantRadial, jy, 1e-12)
	assert.InDelta(t, wantAxial, jz, 1e-12)
}

func TestInertiaSolidCylinder_RejectsNonPositive(t *testing.T) {
	_, _, _, err := InertiaSolidCylinder(3, 0, 2)
	assert.Error(t, err)
}

func TestInertiaBox(t *testing.T) {
	jx, jy, jz, err := InertiaBox(6, 1, 2, 3)

	require.NoError(t, err)
	assert.InDelta(t, (6.0/12)*(2*2+3*3), jx, 1e-12)
	assert.InDelta(t, (6.0/12)*(1*1+3*3), jy, 1e-12)
	assert.InDelta(t, (6.0/12)*(1*1+2*2), jz, 1e-12)
}

func TestInertiaBox_RejectsNonPositive(t *testing.T) {
	_, _, _, err := InertiaBox(6, 1, 0, 3)
	assert.Error(t, err)
}

func TestInertiaHelpers_WireIntoMassMatrix(t *testing.T) {
	jx, jy, jz, err := InertiaSolidSphere(2, 1)
	require.NoError(t, err)

	mm, err := NewMassMatrixFromScalar(2, jx, jy, jz)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{jx, jy, jz}, mm.Inertia())
}
