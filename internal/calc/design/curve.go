package design

import (
	"math"

	"Hydrus/internal/calc/pipesize"
	"Hydrus/internal/units"
)

// CurvePoint is one sample of the system head curve.
type CurvePoint struct {
	Fraction float64 `json:"fraction"`
	FlowGPM  float64 `json:"flow_gpm"`
	FlowM3Hr float64 `json:"flow_m3_hr"`
	HeadM    float64 `json:"head_m"`
	HeadFt   float64 `json:"head_ft"`
}

// SystemCurve samples the system head curve at the given fractions of the
// design zone flow. Each friction term scales with (Q/Qdesign)^1.852; the
// hydrostatic end head and the fittings allowance stay constant. Head rises
// strictly with flow for any valid design.
func SystemCurve(r Results, fractions []float64) []CurvePoint {
	points := make([]CurvePoint, 0, len(fractions))
	friction := r.LateralLossM + r.SubmainLossM + r.MainlineLossM
	for _, f := range fractions {
		scale := math.Pow(f, pipesize.FlowExponent)
		headM := r.EndHeadM + r.FittingsLossM + friction*scale
		flowGPM := r.ZoneFlowGPM * f
		points = append(points, CurvePoint{
			Fraction: f,
			FlowGPM:  flowGPM,
			FlowM3Hr: units.M3hrFromGpm(flowGPM),
			HeadM:    headM,
			HeadFt:   units.FtFromM(headM),
		})
	}
	return points
}
