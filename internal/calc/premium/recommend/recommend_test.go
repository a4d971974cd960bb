package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactors(t *testing.T) {
	t.Run("enclosed building", func(t *testing.T) {
		res, err := Factors(FactorsInput{StructureType: "building", Enclosure: "enclosed"})
		require.NoError(t, err)
		assert.Equal(t, 0.85, res.Kd)
		assert.Equal(t, 0.18, res.GCpiPositive)
		assert.Equal(t, -0.18, res.GCpiNegative)
	})

	t.Run("defaults to enclosed building", func(t *testing.T) {
		res, err := Factors(FactorsInput{})
		require.NoError(t, err)
		assert.Equal(t, 0.85, res.Kd)
		assert.Equal(t, 0.18, res.GCpiPositive)
	})

	t.Run("partially enclosed", func(t *testing.T) {
		res, err := Factors(FactorsInput{Enclosure: "partially_enclosed"})
		require.NoError(t, err)
		assert.Equal(t, 0.55, res.GCpiPositive)
		assert.Equal(t, -0.55, res.GCpiNegative)
	})

	t.Run("open structures carry no internal pressure", func(t *testing.T) {
		res, err := Factors(FactorsInput{Enclosure: "open"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.GCpiPositive)
		assert.Equal(t, 0.0, res.GCpiNegative)
	})

	t.Run("round chimney", func(t *testing.T) {
		res, err := Factors(FactorsInput{StructureType: "chimney_round"})
		require.NoError(t, err)
		assert.Equal(t, 0.95, res.Kd)
	})

	t.Run("unknown structure type", func(t *testing.T) {
		_, err := Factors(FactorsInput{StructureType: "spire"})
		require.Error(t, err)
	})

	t.Run("unknown enclosure", func(t *testing.T) {
		_, err := Factors(FactorsInput{Enclosure: "sealed"})
		require.Error(t, err)
	})
}
