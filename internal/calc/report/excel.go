package report

import (
	"github.com/xuri/excelize/v2"

	"Hydrus/internal/calc/design"
)

// Workbook builds an Excel summary of one computed design: the metric/US
// summary table plus the system-curve samples.
func Workbook(r design.Results) (*excelize.File, error) {
	f := excelize.NewFile()
	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	rows := [][]string{{"Section/Parameter", "Value (Metric)", "Value (US Customary)", "Notes"}}
	rows = append(rows, summaryRows(r)...)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const curveSheet = "System Curve"
	if _, err := f.NewSheet(curveSheet); err != nil {
		return nil, err
	}
	headers := []string{"Fraction", "Flow (gpm)", "Flow (m3/hr)", "TDH (m)", "TDH (ft)"}
	for j, h := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(curveSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, p := range r.CurvePoints {
		values := []float64{p.Fraction, p.FlowGPM, p.FlowM3Hr, p.HeadM, p.HeadFt}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(curveSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
