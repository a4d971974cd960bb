package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	wind "Aeolus/internal/calc/wind"
	"Aeolus/internal/observability"
	"github.com/xuri/excelize/v2"
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

type WindImportResult struct {
	Count   int          `json:"count"`
	Results []RowResult  `json:"results"`
}

type RowResult struct {
	Site     wind.Site           `json:"site"`
	Velocity wind.VelocityResult `json:"velocity"`
	Design   *wind.DesignResult  `json:"design,omitempty"`
}

// Wind imports one site per spreadsheet row and evaluates it. Rows that
// fail to parse or calculate are skipped, matching the tolerant import
// behavior of the other tools.
func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []RowResult
	for i := 1; i < len(rows); i++ {
		site, gcp, err := parseSiteRow(rows[i])
		if err != nil {
			continue
		}
		vel, err := wind.VelocityPressure(h.table(), site)
		if err != nil {
			continue
		}
		res := RowResult{Site: site, Velocity: vel}
		if gcp != 0 {
			dr := wind.ResolveCoefficient(vel.QhPSF, gcp, site.GCpi)
			res.Design = &dr
		}
		results = append(results, res)
	}
	observability.ObserveCalc("wind_import", nil)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WindImportResult{Count: len(results), Results: results})
}

// parseSiteRow reads: v_mph, height_ft, exposure, kd, kzt, elevation_ft,
// gcpi, gcp. Columns past exposure are optional.
func parseSiteRow(row []string) (wind.Site, float64, error) {
	if len(row) < 3 {
		return wind.Site{}, 0, fmt.Errorf("bad row")
	}
	v, err := toFloat(row[0])
	if err != nil {
		return wind.Site{}, 0, err
	}
	height, err := toFloat(row[1])
	if err != nil {
		return wind.Site{}, 0, err
	}
	if row[2] == "" {
		return wind.Site{}, 0, fmt.Errorf("missing exposure")
	}
	site := wind.Site{
		VMph:     v,
		HeightFt: height,
		Exposure: wind.Category(row[2]),
	}
	if len(row) > 3 && row[3] != "" {
		site.Kd, _ = toFloat(row[3])
	}
	if len(row) > 4 && row[4] != "" {
		site.Kzt, _ = toFloat(row[4])
	}
	if len(row) > 5 && row[5] != "" {
		site.ElevationFt, _ = toFloat(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		site.GCpi, _ = toFloat(row[6])
	}
	gcp := 0.0
	if len(row) > 7 && row[7] != "" {
		gcp, _ = toFloat(row[7])
	}
	return site, gcp, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
