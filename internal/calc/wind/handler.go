package wind

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	auth "Aeolus/internal/auth"
	"Aeolus/internal/observability"
)

// CalcStore persists finished runs for the calculation history. A nil
// store disables persistence (e.g. in tests).
type CalcStore interface {
	SaveCalculation(ctx context.Context, userID int, tool string, input json.RawMessage, qhPSF float64) error
}

type Handler struct {
	Table *Table
	Store CalcStore
}

func (h *Handler) table() *Table {
	if h.Table != nil {
		return h.Table
	}
	return TableLowRise
}

type VelocityResponse struct {
	Table string `json:"table"`
	VelocityResult
	Notes []string `json:"notes,omitempty"`
}

type DesignRequest struct {
	Site    Site     `json:"site"`
	Methods []Method `json:"methods"`
}

type DesignResponse struct {
	Table    string         `json:"table"`
	Velocity VelocityResult `json:"velocity"`
	Results  []DesignResult `json:"results"`
	Notes    []string       `json:"notes,omitempty"`
}

func (h *Handler) Velocity(w http.ResponseWriter, r *http.Request) {
	var site Site
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := VelocityPressure(h.table(), site)
	observability.ObserveCalc("wind_velocity", err)
	if err != nil {
		http.Error(w, "Unknown exposure category", http.StatusBadRequest)
		return
	}
	h.save(r, "wind_velocity", site, res.QhPSF)

	resp := VelocityResponse{Table: h.table().Name, VelocityResult: res}
	resp.Notes = heightNotes(site.HeightFt, nil)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) Design(w http.ResponseWriter, r *http.Request) {
	var input DesignRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	vel, err := VelocityPressure(h.table(), input.Site)
	observability.ObserveCalc("wind_design", err)
	if err != nil {
		http.Error(w, "Unknown exposure category", http.StatusBadRequest)
		return
	}

	kzt := input.Site.Kzt
	if kzt <= 0 {
		kzt = DefaultKzt
	}
	resp := DesignResponse{Table: h.table().Name, Velocity: vel}
	for _, m := range input.Methods {
		// λ omitted in the request means "unknown, use 1.0" (figure note).
		if m.Kind == MethodFigure && m.Lambda == 0 {
			m.Lambda = 1.0
		}
		res, err := Resolve(vel.QhPSF, kzt, m)
		if err != nil {
			http.Error(w, "Unknown design pressure method", http.StatusBadRequest)
			return
		}
		resp.Results = append(resp.Results, res)
		resp.Notes = methodNotes(m, resp.Notes)
	}
	resp.Notes = heightNotes(input.Site.HeightFt, resp.Notes)
	h.save(r, "wind_design", input.Site, vel.QhPSF)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) save(r *http.Request, tool string, site Site, qhPSF float64) {
	if h.Store == nil {
		return
	}
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return
	}
	raw, err := json.Marshal(site)
	if err != nil {
		return
	}
	// History is best-effort; a failed insert must not fail the calculation.
	_ = h.Store.SaveCalculation(r.Context(), userID, tool, raw, qhPSF)
}

// heightNotes adds the low-rise domain warning. The table clamps, so the
// result is still defined; the procedure is only validated to 60 ft.
func heightNotes(heightFt float64, notes []string) []string {
	if heightFt > LowRiseLimitFt {
		notes = append(notes, fmt.Sprintf("mean roof height %.1f ft exceeds the %.0f ft low-rise limit; Kh clamped to the table range", heightFt, LowRiseLimitFt))
	}
	return notes
}

// methodNotes flags zero figure/coefficient reads. Zero is computed
// faithfully by the resolver; it usually means the value was never
// entered, so the advisory is raised here at the boundary.
func methodNotes(m Method, notes []string) []string {
	switch m.Kind {
	case MethodFigure:
		if m.Pnet30 == 0 {
			notes = append(notes, "pnet30 is zero; read the Fig. 30.4-1 value for the governing zone")
		}
	case MethodCoefficient:
		if m.GCp == 0 {
			notes = append(notes, "GCp is zero; read the external coefficient from the Fig. 30.3 series")
		}
	}
	return notes
}
