package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	wind "Aeolus/internal/calc/wind"
	"Aeolus/internal/observability"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Site    wind.Site     `json:"site"`
	Methods []wind.Method `json:"methods,omitempty"`
}

type Handler struct {
	Table *wind.Table
}

func (h *Handler) table() *wind.Table {
	if h.Table != nil {
		return h.Table
	}
	return wind.TableLowRise
}

// Generate renders a PDF of the wind calculation: parameter echo,
// velocity pressure and any requested design pressures.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Wind Design Pressure Report"
	}

	vel, err := wind.VelocityPressure(h.table(), input.Site)
	observability.ObserveCalc("wind_report", err)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	kzt := input.Site.Kzt
	if kzt <= 0 {
		kzt = wind.DefaultKzt
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Site parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("V = %.1f mph, h = %.2f ft, Exposure %s", input.Site.VMph, input.Site.HeightFt, input.Site.Exposure))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Kzt = %.3f, elevation = %.1f ft, GCpi = %.3f", kzt, input.Site.ElevationFt, input.Site.GCpi))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Velocity pressure (Eq. 26.10-1)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Kh = %.3f (%s), Ke = %.3f", vel.Kh, h.table().Name, vel.Ke))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("qh = %.3f psf = %.4f kPa", vel.QhPSF, vel.QhKPa))
	pdf.Ln(10)

	if len(input.Methods) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Design pressures")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, m := range input.Methods {
			if m.Kind == wind.MethodFigure && m.Lambda == 0 {
				m.Lambda = 1.0
			}
			res, err := wind.Resolve(vel.QhPSF, kzt, m)
			if err != nil {
				http.Error(w, "Unknown design pressure method", http.StatusBadRequest)
				return
			}
			switch m.Kind {
			case wind.MethodFigure:
				pdf.Cell(0, 6, fmt.Sprintf("Fig. 30.4-1: pnet = %.3f * %.3f * %.3f = %.3f psf = %.4f kPa",
					m.Lambda, kzt, m.Pnet30, res.PressurePSF, res.PressureKPa))
			case wind.MethodCoefficient:
				pdf.Cell(0, 6, fmt.Sprintf("GCp path: p = qh*(%.3f - %.3f) = %.3f psf = %.4f kPa",
					m.GCp, m.GCpi, res.PressurePSF, res.PressureKPa))
			}
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if input.Notes != "" {
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
		pdf.Ln(4)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "References: ASCE 7-16 Chapter 26 (Kz, qz) and Chapter 30 (C&C figures, Eq. 30.4-1). Design-assistance only; verify per the governing code.", "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wind-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
