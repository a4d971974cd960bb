package recommend

import (
	"encoding/json"
	"net/http"

	"Aeolus/internal/observability"
)

type Handler struct{}

func (h *Handler) Factors(w http.ResponseWriter, r *http.Request) {
	var input FactorsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Factors(input)
	observability.ObserveCalc("wind_factors", err)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
