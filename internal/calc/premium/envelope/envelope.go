package envelope

import (
	"fmt"

	wind "Aeolus/internal/calc/wind"
)

type Zone struct {
	Label string  `json:"label"`
	GCp   float64 `json:"gcp"`
}

type Input struct {
	Site  wind.Site `json:"site"`
	Zones []Zone    `json:"zones"`
}

type ZoneResult struct {
	Label       string  `json:"label"`
	GCp         float64 `json:"gcp"`
	PressurePSF float64 `json:"pressure_psf"`
	PressureKPa float64 `json:"pressure_kpa"`
}

type Result struct {
	Velocity       wind.VelocityResult `json:"velocity"`
	Zones          []ZoneResult        `json:"zones"`
	MaxPositivePSF float64             `json:"max_positive_psf"`
	MaxNegativePSF float64             `json:"max_negative_psf"`
	GoverningZone  string              `json:"governing_zone"`
}

// Calculate resolves the coefficient-path pressure for every roof zone
// and reports the governing positive and negative (suction) values. The
// governing zone is the one with the largest pressure magnitude.
func Calculate(t *wind.Table, in Input) (Result, error) {
	if len(in.Zones) == 0 {
		return Result{}, fmt.Errorf("no zones")
	}
	vel, err := wind.VelocityPressure(t, in.Site)
	if err != nil {
		return Result{}, err
	}

	out := Result{Velocity: vel, Zones: make([]ZoneResult, 0, len(in.Zones))}
	worst := 0.0
	for _, z := range in.Zones {
		dr := wind.ResolveCoefficient(vel.QhPSF, z.GCp, in.Site.GCpi)
		out.Zones = append(out.Zones, ZoneResult{
			Label:       z.Label,
			GCp:         z.GCp,
			PressurePSF: dr.PressurePSF,
			PressureKPa: dr.PressureKPa,
		})
		if dr.PressurePSF > out.MaxPositivePSF {
			out.MaxPositivePSF = dr.PressurePSF
		}
		if dr.PressurePSF < out.MaxNegativePSF {
			out.MaxNegativePSF = dr.PressurePSF
		}
		if abs(dr.PressurePSF) > abs(worst) {
			worst = dr.PressurePSF
			out.GoverningZone = z.Label
		}
	}
	return out, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
