package envelope

import (
	"testing"

	wind "Aeolus/internal/calc/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	in := Input{
		Site: wind.Site{VMph: 115, HeightFt: 30, Exposure: wind.ExposureC, GCpi: 0.18},
		Zones: []Zone{
			{Label: "1", GCp: -0.9},
			{Label: "2", GCp: -1.4},
			{Label: "3", GCp: 0.3},
		},
	}

	out, err := Calculate(wind.TableLowRise, in)
	require.NoError(t, err)
	require.Len(t, out.Zones, 3)

	qh := out.Velocity.QhPSF
	assert.InDelta(t, qh*(-0.9-0.18), out.Zones[0].PressurePSF, 1e-9)
	assert.InDelta(t, qh*(-1.4-0.18), out.Zones[1].PressurePSF, 1e-9)
	assert.InDelta(t, qh*(0.3-0.18), out.Zones[2].PressurePSF, 1e-9)

	// Zone 2 governs: largest suction magnitude.
	assert.Equal(t, "2", out.GoverningZone)
	assert.InDelta(t, qh*(-1.4-0.18), out.MaxNegativePSF, 1e-9)
	assert.InDelta(t, qh*(0.3-0.18), out.MaxPositivePSF, 1e-9)

	for _, z := range out.Zones {
		assert.InDelta(t, z.PressurePSF*wind.PSFToKPa, z.PressureKPa, 1e-9)
	}
}

func TestCalculate_NoZones(t *testing.T) {
	_, err := Calculate(wind.TableLowRise, Input{Site: wind.Site{VMph: 115, HeightFt: 30, Exposure: wind.ExposureC}})
	require.Error(t, err)
}

func TestCalculate_BadCategory(t *testing.T) {
	in := Input{
		Site:  wind.Site{VMph: 115, HeightFt: 30, Exposure: "Q"},
		Zones: []Zone{{Label: "1", GCp: -0.9}},
	}
	_, err := Calculate(wind.TableLowRise, in)
	require.ErrorIs(t, err, wind.ErrExposureCategory)
}
