package recommend

import "fmt"

// FactorsInput selects the code-tabulated factors for a project: Kd from
// ASCE 7-16 Table 26.6-1 by structure type, GCpi from Table 26.13-1 by
// enclosure classification.
type FactorsInput struct {
	StructureType string `json:"structure_type"`
	Enclosure     string `json:"enclosure"`
}

type FactorsResult struct {
	Kd           float64 `json:"kd"`
	GCpiPositive float64 `json:"gcpi_positive"`
	GCpiNegative float64 `json:"gcpi_negative"`
	Notes        string  `json:"notes"`
}

func Factors(in FactorsInput) (FactorsResult, error) {
	kd, kdName, err := directionality(in.StructureType)
	if err != nil {
		return FactorsResult{}, err
	}
	gcpi, encName, err := internalPressure(in.Enclosure)
	if err != nil {
		return FactorsResult{}, err
	}
	return FactorsResult{
		Kd:           kd,
		GCpiPositive: gcpi,
		GCpiNegative: -gcpi,
		Notes:        fmt.Sprintf("Kd per Table 26.6-1 (%s), GCpi per Table 26.13-1 (%s).", kdName, encName),
	}, nil
}

func directionality(structureType string) (kd float64, name string, err error) {
	switch structureType {
	case "", "building":
		return 0.85, "buildings, MWFRS and C&C", nil
	case "arched_roof":
		return 0.85, "arched roofs", nil
	case "chimney_square":
		return 0.90, "square chimneys and tanks", nil
	case "chimney_round":
		return 0.95, "round chimneys and tanks", nil
	case "solid_sign":
		return 0.85, "solid freestanding walls and signs", nil
	case "open_frame":
		return 0.85, "open signs and single-plane open frames", nil
	case "trussed_tower_triangular", "trussed_tower_square":
		return 0.85, "trussed towers, triangular/square/rectangular", nil
	case "trussed_tower_other":
		return 0.95, "trussed towers, other cross sections", nil
	}
	return 0, "", fmt.Errorf("unknown structure type %q", structureType)
}

func internalPressure(enclosure string) (gcpi float64, name string, err error) {
	switch enclosure {
	case "", "enclosed":
		return 0.18, "enclosed", nil
	case "partially_enclosed":
		return 0.55, "partially enclosed", nil
	case "partially_open":
		return 0.18, "partially open", nil
	case "open":
		return 0.00, "open", nil
	}
	return 0, "", fmt.Errorf("unknown enclosure classification %q", enclosure)
}
