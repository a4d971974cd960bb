package importer

import (
	"testing"

	wind "Aeolus/internal/calc/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSiteRow(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		site, gcp, err := parseSiteRow([]string{"115", "30", "C", "0.85", "1.0", "2000", "0.18", "-1.1"})
		require.NoError(t, err)
		assert.Equal(t, wind.Site{
			VMph:        115,
			HeightFt:    30,
			Exposure:    wind.ExposureC,
			Kd:          0.85,
			Kzt:         1.0,
			ElevationFt: 2000,
			GCpi:        0.18,
		}, site)
		assert.Equal(t, -1.1, gcp)
	})

	t.Run("minimal row", func(t *testing.T) {
		site, gcp, err := parseSiteRow([]string{"130", "45", "D"})
		require.NoError(t, err)
		assert.Equal(t, wind.ExposureD, site.Exposure)
		assert.Equal(t, 0.0, site.Kd)
		assert.Equal(t, 0.0, gcp)
	})

	t.Run("short row", func(t *testing.T) {
		_, _, err := parseSiteRow([]string{"115", "30"})
		require.Error(t, err)
	})

	t.Run("non-numeric speed", func(t *testing.T) {
		_, _, err := parseSiteRow([]string{"fast", "30", "C"})
		require.Error(t, err)
	})

	t.Run("missing exposure", func(t *testing.T) {
		_, _, err := parseSiteRow([]string{"115", "30", ""})
		require.Error(t, err)
	})
}
