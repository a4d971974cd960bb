package wind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCoefficient(t *testing.T) {
	res := ResolveCoefficient(25.0, -1.1, 0.18)
	assert.Equal(t, MethodCoefficient, res.Kind)
	assert.InDelta(t, -32.0, res.PressurePSF, 1e-9)
	assert.Equal(t, res.PressurePSF*PSFToKPa, res.PressureKPa)
}

func TestResolveFigure(t *testing.T) {
	res := ResolveFigure(-45.0, 1.0, 1.0)
	assert.Equal(t, MethodFigure, res.Kind)
	assert.InDelta(t, -45.0, res.PressurePSF, 1e-12)
	assert.Equal(t, res.PressurePSF*PSFToKPa, res.PressureKPa)

	res = ResolveFigure(-45.0, 1.21, 1.1)
	assert.InDelta(t, -45.0*1.21*1.1, res.PressurePSF, 1e-9)
}

func TestResolve_Dispatch(t *testing.T) {
	fig := Method{Kind: MethodFigure, Pnet30: -45, Lambda: 1.15}
	coef := Method{Kind: MethodCoefficient, GCp: -1.1, GCpi: 0.18}

	got, err := Resolve(25.0, 1.0, fig)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(ResolveFigure(-45, 1.15, 1.0), got))

	got, err = Resolve(25.0, 1.0, coef)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(ResolveCoefficient(25.0, -1.1, 0.18), got))
}

func TestResolve_PathIndependence(t *testing.T) {
	t.Run("figure path ignores qh", func(t *testing.T) {
		m := Method{Kind: MethodFigure, Pnet30: -45, Lambda: 1.0}
		a, err := Resolve(10.0, 1.0, m)
		require.NoError(t, err)
		b, err := Resolve(999.0, 1.0, m)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("coefficient path ignores kzt", func(t *testing.T) {
		m := Method{Kind: MethodCoefficient, GCp: -1.1, GCpi: 0.18}
		a, err := Resolve(25.0, 1.0, m)
		require.NoError(t, err)
		b, err := Resolve(25.0, 1.5, m)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestResolve_ZeroComputedFaithfully(t *testing.T) {
	// Zero reads are "not yet entered" only at the boundary; the resolver
	// itself reports the arithmetic result.
	res := ResolveFigure(0, 1.0, 1.0)
	assert.Equal(t, 0.0, res.PressurePSF)

	res = ResolveCoefficient(25.0, 0, 0)
	assert.Equal(t, 0.0, res.PressurePSF)
}

func TestResolve_UnknownKind(t *testing.T) {
	_, err := Resolve(25.0, 1.0, Method{Kind: "analytic"})
	require.ErrorIs(t, err, ErrMethodKind)

	_, err = Resolve(25.0, 1.0, Method{})
	require.ErrorIs(t, err, ErrMethodKind)
}
