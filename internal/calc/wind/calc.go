package wind

import "math"

const (
	// PSFToKPa is the fixed lb/ft² → kN/m² conversion used everywhere in
	// the results, matching the rounding convention of the code examples.
	PSFToKPa = 0.0478803

	DefaultKd  = 0.85
	DefaultKzt = 1.0

	// LowRiseLimitFt is the validity limit of the low-rise C&C procedure.
	// Heights above it are still clamped and computed; callers decide
	// whether to warn.
	LowRiseLimitFt = 60.0
)

type Site struct {
	VMph        float64  `json:"v_mph"`
	HeightFt    float64  `json:"height_ft"`
	Exposure    Category `json:"exposure"`
	Kd          float64  `json:"kd"`
	Kzt         float64  `json:"kzt"`
	ElevationFt float64  `json:"elevation_ft"`
	GCpi        float64  `json:"gcpi"`
}

type VelocityResult struct {
	Kh    float64 `json:"kh"`
	Ke    float64 `json:"ke"`
	QhPSF float64 `json:"qh_psf"`
	QhKPa float64 `json:"qh_kpa"`
}

// ElevationFactor computes the ground elevation factor Ke. Elevations at
// or below sea level mean "not applied" and return 1.0.
func ElevationFactor(elevFt float64) float64 {
	if elevFt <= 0 {
		return 1.0
	}
	return math.Exp(-0.0000362 * elevFt)
}

// VelocityPressure computes qh per ASCE Eq. 26.10-1 with Kh interpolated
// from the given table at the mean roof height. V is in mph, qh in psf.
// Omitted Kd and Kzt fall back to the code defaults.
func VelocityPressure(t *Table, site Site) (VelocityResult, error) {
	if site.Kd <= 0 {
		site.Kd = DefaultKd
	}
	if site.Kzt <= 0 {
		site.Kzt = DefaultKzt
	}
	kh, err := t.CoefficientAt(site.Exposure, site.HeightFt)
	if err != nil {
		return VelocityResult{}, err
	}
	ke := ElevationFactor(site.ElevationFt)
	qh := 0.00256 * kh * site.Kzt * site.Kd * ke * site.VMph * site.VMph
	return VelocityResult{
		Kh:    kh,
		Ke:    ke,
		QhPSF: qh,
		QhKPa: qh * PSFToKPa,
	}, nil
}
