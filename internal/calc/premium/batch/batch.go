package batch

import (
	"fmt"

	wind "Aeolus/internal/calc/wind"
)

type Item struct {
	Site    wind.Site     `json:"site"`
	Methods []wind.Method `json:"methods,omitempty"`
}

type ItemResult struct {
	Velocity wind.VelocityResult `json:"velocity"`
	Design   []wind.DesignResult `json:"design,omitempty"`
}

type WindBatchInput struct {
	Items []Item `json:"items"`
}

type WindBatchResult struct {
	Table   string       `json:"table"`
	Results []ItemResult `json:"results"`
}

// CalculateWind evaluates every item against the same table. Items are
// independent of each other; the first bad item aborts the batch.
func CalculateWind(t *wind.Table, in WindBatchInput) (WindBatchResult, error) {
	if len(in.Items) == 0 {
		return WindBatchResult{}, fmt.Errorf("no items")
	}
	out := WindBatchResult{Table: t.Name, Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		vel, err := wind.VelocityPressure(t, item.Site)
		if err != nil {
			return WindBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		kzt := item.Site.Kzt
		if kzt <= 0 {
			kzt = wind.DefaultKzt
		}
		res := ItemResult{Velocity: vel}
		for _, m := range item.Methods {
			dr, err := wind.Resolve(vel.QhPSF, kzt, m)
			if err != nil {
				return WindBatchResult{}, fmt.Errorf("item %d: %w", i, err)
			}
			res.Design = append(res.Design, dr)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
