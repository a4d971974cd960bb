package wind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoefficientAt_Breakpoints(t *testing.T) {
	for _, tbl := range []*Table{TableLowRise, TableFull} {
		t.Run(tbl.Name, func(t *testing.T) {
			rows := map[Category][]float64{ExposureB: tbl.B, ExposureC: tbl.C, ExposureD: tbl.D}
			for cat, ks := range rows {
				for i, h := range tbl.Heights {
					got, err := tbl.CoefficientAt(cat, h)
					require.NoError(t, err)
					assert.Equal(t, ks[i], got, "exposure %s at %.0f ft", cat, h)
				}
			}
		})
	}
}

func TestCoefficientAt_Interpolation(t *testing.T) {
	// Midway between the 25 and 30 ft rows for exposure C.
	got, err := TableLowRise.CoefficientAt(ExposureC, 27.5)
	require.NoError(t, err)
	assert.InDelta(t, (0.94+0.98)/2, got, 1e-12)

	got, err = TableLowRise.CoefficientAt(ExposureB, 35)
	require.NoError(t, err)
	assert.InDelta(t, (0.70+0.76)/2, got, 1e-12)
}

func TestCoefficientAt_Clamping(t *testing.T) {
	t.Run("below the lowest breakpoint", func(t *testing.T) {
		got, err := TableFull.CoefficientAt(ExposureC, 5)
		require.NoError(t, err)
		assert.Equal(t, 0.85, got)

		got, err = TableLowRise.CoefficientAt(ExposureC, -10)
		require.NoError(t, err)
		assert.Equal(t, 0.70, got)
	})

	t.Run("above the highest breakpoint", func(t *testing.T) {
		got, err := TableLowRise.CoefficientAt(ExposureD, 200)
		require.NoError(t, err)
		assert.Equal(t, 1.31, got)

		got, err = TableFull.CoefficientAt(ExposureD, 1000)
		require.NoError(t, err)
		assert.Equal(t, 1.89, got)
	})
}

func TestCoefficientAt_Monotonic(t *testing.T) {
	for _, tbl := range []*Table{TableLowRise, TableFull} {
		for _, cat := range []Category{ExposureB, ExposureC, ExposureD} {
			prev := 0.0
			for h := tbl.MinHeight() - 10; h <= tbl.MaxHeight()+10; h += 0.5 {
				got, err := tbl.CoefficientAt(cat, h)
				require.NoError(t, err)
				require.GreaterOrEqual(t, got+1e-12, prev, "%s exposure %s at %.1f ft", tbl.Name, cat, h)
				prev = got
			}
		}
	}
}

func TestCoefficientAt_UnknownCategory(t *testing.T) {
	_, err := TableLowRise.CoefficientAt(Category("E"), 30)
	require.ErrorIs(t, err, ErrExposureCategory)

	_, err = TableFull.CoefficientAt(Category(""), 30)
	require.ErrorIs(t, err, ErrExposureCategory)
}

func TestTables_AgreeAt30FtExposureC(t *testing.T) {
	// The two vintages disagree at several shared heights but both carry
	// the 0.98 value behind the published 30 ft example.
	low, err := TableLowRise.CoefficientAt(ExposureC, 30)
	require.NoError(t, err)
	full, err := TableFull.CoefficientAt(ExposureC, 30)
	require.NoError(t, err)
	assert.Equal(t, 0.98, low)
	assert.Equal(t, 0.98, full)
}
