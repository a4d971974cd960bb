package wind

import (
	"errors"
	"fmt"
)

type MethodKind string

const (
	// MethodFigure applies Eq. 30.4-1: pnet = λ·Kzt·pnet30, with pnet30
	// read from Fig. 30.4-1. The velocity pressure is not used on this path.
	MethodFigure MethodKind = "figure"
	// MethodCoefficient applies p = qh·(GCp - GCpi) with figure-sourced
	// pressure coefficients.
	MethodCoefficient MethodKind = "coefficient"
)

// ErrMethodKind is returned for a method kind other than the two above.
var ErrMethodKind = errors.New("unknown design pressure method")

// Method is the tagged design-pressure variant. Pnet30/Lambda belong to
// the figure path, GCp/GCpi to the coefficient path.
type Method struct {
	Kind   MethodKind `json:"kind"`
	Pnet30 float64    `json:"pnet30_psf"`
	Lambda float64    `json:"lambda"`
	GCp    float64    `json:"gcp"`
	GCpi   float64    `json:"gcpi"`
}

type DesignResult struct {
	Kind        MethodKind `json:"kind"`
	PressurePSF float64    `json:"pressure_psf"`
	PressureKPa float64    `json:"pressure_kpa"`
}

// ResolveFigure computes pnet = λ·Kzt·pnet30. A zero pnet30 is computed
// faithfully; whether zero means "not entered" is the caller's concern.
func ResolveFigure(pnet30, lambda, kzt float64) DesignResult {
	p := lambda * kzt * pnet30
	return DesignResult{Kind: MethodFigure, PressurePSF: p, PressureKPa: p * PSFToKPa}
}

// ResolveCoefficient computes p = qh·(GCp - GCpi).
func ResolveCoefficient(qhPSF, gcp, gcpi float64) DesignResult {
	p := qhPSF * (gcp - gcpi)
	return DesignResult{Kind: MethodCoefficient, PressurePSF: p, PressureKPa: p * PSFToKPa}
}

// Resolve dispatches on the method kind. The figure path ignores qhPSF,
// the coefficient path ignores kzt; both may be requested for the same
// site to cross-check a figure read against a coefficient read.
func Resolve(qhPSF, kzt float64, m Method) (DesignResult, error) {
	switch m.Kind {
	case MethodFigure:
		return ResolveFigure(m.Pnet30, m.Lambda, kzt), nil
	case MethodCoefficient:
		return ResolveCoefficient(qhPSF, m.GCp, m.GCpi), nil
	}
	return DesignResult{}, fmt.Errorf("%w: %q", ErrMethodKind, m.Kind)
}
