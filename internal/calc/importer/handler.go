package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Hydrus/internal/calc/design"
)

// Handler runs the calculator over scenarios uploaded as a worksheet, one
// scenario per row below the header. Rows that fail to parse or validate are
// skipped, matching spreadsheet-import expectations.
type Handler struct{}

type ImportResult struct {
	Count   int              `json:"count"`
	Results []design.Results `json:"results"`
}

func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
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

	var results []design.Results
	for i := 1; i < len(rows); i++ {
		input, err := parseScenarioRow(rows[i])
		if err != nil {
			continue
		}
		res, err := design.Calculate(input, design.DefaultConstants())
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// expected columns: field_length_ew_m, field_width_ns_m, design_crop_et_mm_day,
// evaporation_loss_pct, zone_count, end_lateral_pressure_kpa,
// irrigation_time_hrs_day (optional), spacing_x_m (optional),
// spacing_y_m (optional)
func parseScenarioRow(row []string) (design.Inputs, error) {
	if len(row) < 6 {
		return design.Inputs{}, fmt.Errorf("bad row")
	}
	length, err := toFloat(row[0])
	if err != nil {
		return design.Inputs{}, err
	}
	width, err := toFloat(row[1])
	if err != nil {
		return design.Inputs{}, err
	}
	et, err := toFloat(row[2])
	if err != nil {
		return design.Inputs{}, err
	}
	evap, err := toFloat(row[3])
	if err != nil {
		return design.Inputs{}, err
	}
	zones, err := toFloat(row[4])
	if err != nil {
		return design.Inputs{}, err
	}
	pressure, err := toFloat(row[5])
	if err != nil {
		return design.Inputs{}, err
	}

	hours := 24.0
	if len(row) > 6 && row[6] != "" {
		hours, _ = toFloat(row[6])
	}
	spacingX := 6.1
	if len(row) > 7 && row[7] != "" {
		spacingX, _ = toFloat(row[7])
	}
	spacingY := spacingX
	if len(row) > 8 && row[8] != "" {
		spacingY, _ = toFloat(row[8])
	}

	return design.Inputs{
		FieldLengthEWM:        length,
		FieldWidthNSM:         width,
		DesignCropETMMDay:     et,
		EvaporationLossPct:    evap,
		IrrigationTimeHrsDay:  hours,
		SprinklerSpacingXM:    spacingX,
		SprinklerSpacingYM:    spacingY,
		ZoneCount:             int(zones),
		EndLateralPressureKPa: pressure,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
