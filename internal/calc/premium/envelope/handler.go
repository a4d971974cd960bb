package envelope

import (
	"encoding/json"
	"net/http"

	wind "Aeolus/internal/calc/wind"
	"Aeolus/internal/observability"
)

type Handler struct {
	Table *wind.Table
}

func (h *Handler) table() *wind.Table {
	if h.Table != nil {
		return h.Table
	}
	return wind.TableLowRise
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(h.table(), input)
	observability.ObserveCalc("wind_envelope", err)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
