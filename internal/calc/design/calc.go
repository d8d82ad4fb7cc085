package design

import (
	"math"

	"Hydrus/internal/units"
)

// Inputs is one validated design scenario. Lengths in metres, ET in mm/day,
// pressure in kPa.
type Inputs struct {
	FieldLengthEWM        float64 `json:"field_length_ew_m"`
	FieldWidthNSM         float64 `json:"field_width_ns_m"`
	DesignCropETMMDay     float64 `json:"design_crop_et_mm_day"`
	EvaporationLossPct    float64 `json:"evaporation_loss_pct"`
	IrrigationTimeHrsDay  float64 `json:"irrigation_time_hrs_day"`
	SprinklerSpacingXM    float64 `json:"sprinkler_spacing_x_m"`
	SprinklerSpacingYM    float64 `json:"sprinkler_spacing_y_m"`
	ZoneCount             int     `json:"zone_count"`
	EndLateralPressureKPa float64 `json:"end_lateral_pressure_kpa"`
}

// Constants carries the head losses fixed by the prior pipe-sizing exercise
// and the sprinkler layout of the reference scenario. They are configuration,
// not derived from Inputs.
type Constants struct {
	MainlineLossM        float64   `json:"mainline_loss_m"`
	FittingsLossM        float64   `json:"fittings_loss_m"`
	LateralLossM         float64   `json:"lateral_loss_m"`
	SubmainLossM         float64   `json:"submain_loss_m"`
	SprinklersPerLateral int       `json:"sprinklers_per_lateral"`
	LateralsPerZone      int       `json:"laterals_per_zone"`
	PumpEfficiency       float64   `json:"pump_efficiency"`
	CurveFractions       []float64 `json:"curve_fractions"`
}

// DefaultConstants returns the reference-scenario configuration: 150 mm
// mainline over 1000 m, 100 mm half-lateral and half-submain, 2.0 m solenoid
// plus 2.0 m pump fittings, 33x41 sprinkler grid per zone.
func DefaultConstants() Constants {
	return Constants{
		MainlineLossM:        2.574,
		FittingsLossM:        4.0,
		LateralLossM:         0.795,
		SubmainLossM:         0.642,
		SprinklersPerLateral: 33,
		LateralsPerZone:      41,
		PumpEfficiency:       0.70,
		CurveFractions:       []float64{0.8, 1.0, 1.2},
	}
}

// Results holds every derived quantity of one calculator invocation. Produced
// atomically and never mutated; the report and export surfaces read from it
// without recomputing.
type Results struct {
	Inputs Inputs `json:"inputs"`

	TotalAreaM2     float64 `json:"total_area_m2"`
	TotalAreaAcres  float64 `json:"total_area_acres"`
	GrossDepthMMDay float64 `json:"gross_depth_mm_day"`
	CropVolumeM3Day float64 `json:"crop_volume_m3_day"`
	PumpVolumeM3Day float64 `json:"pump_volume_m3_day"`

	TotalFlowM3S  float64 `json:"total_flow_m3_s"`
	TotalFlowLs   float64 `json:"total_flow_l_s"`
	TotalFlowM3Hr float64 `json:"total_flow_m3_hr"`
	TotalFlowGPM  float64 `json:"total_flow_gpm"`

	ZoneLengthEWM        float64 `json:"zone_length_ew_m"`
	ZoneWidthNSM         float64 `json:"zone_width_ns_m"`
	SprinklersPerLateral int     `json:"sprinklers_per_lateral"`
	LateralsPerZone      int     `json:"laterals_per_zone"`
	SprinklersPerZone    int     `json:"sprinklers_per_zone"`
	SprinklersTotal      int     `json:"sprinklers_total"`

	ZoneFlowGPM     float64 `json:"zone_flow_gpm"`
	ZoneFlowM3S     float64 `json:"zone_flow_m3_s"`
	ZoneFlowLs      float64 `json:"zone_flow_l_s"`
	ZoneFlowM3Hr    float64 `json:"zone_flow_m3_hr"`
	SprinklerFlowLs float64 `json:"sprinkler_flow_l_s"`

	EndHeadM      float64 `json:"end_head_m"`
	LateralLossM  float64 `json:"lateral_loss_m"`
	SubmainLossM  float64 `json:"submain_loss_m"`
	MainlineLossM float64 `json:"mainline_loss_m"`
	FittingsLossM float64 `json:"fittings_loss_m"`
	TotalHeadM    float64 `json:"total_head_m"`
	TotalHeadFt   float64 `json:"total_head_ft"`

	PumpEfficiency float64 `json:"pump_efficiency"`
	BrakeHP        float64 `json:"brake_hp"`
	MotorHP        float64 `json:"motor_hp"`

	CurvePoints []CurvePoint `json:"system_curve_points"`
}

// Standard motor ladder for the recommendation, smallest first.
var motorSizesHP = []float64{1, 1.5, 2, 3, 5, 7.5, 10, 15, 20, 25}

// Calculate maps one validated scenario to its hydraulic design. Pure: the
// same inputs and constants always produce identical results.
func Calculate(in Inputs, c Constants) (Results, error) {
	if err := validate(in, c); err != nil {
		return Results{}, err
	}

	r := Results{Inputs: in}

	// Crop water requirement and pumped volume.
	r.TotalAreaM2 = in.FieldLengthEWM * in.FieldWidthNSM
	r.TotalAreaAcres = units.AcresFromM2(r.TotalAreaM2)
	evap := in.EvaporationLossPct / 100.0
	r.GrossDepthMMDay = in.DesignCropETMMDay / (1 - evap)
	r.CropVolumeM3Day = r.TotalAreaM2 * (in.DesignCropETMMDay / 1000.0)
	r.PumpVolumeM3Day = r.CropVolumeM3Day / (1 - evap)

	// Total system flow, assuming round-the-clock operation as in the
	// reference exercise.
	r.TotalFlowM3S = r.PumpVolumeM3Day / units.SecPerDay
	r.TotalFlowLs = r.TotalFlowM3S * 1000.0
	r.TotalFlowM3Hr = r.PumpVolumeM3Day / 24.0
	r.TotalFlowGPM = units.GpmFromM3s(r.TotalFlowM3S)

	// Zone layout. The sprinkler grid is scenario configuration, not derived
	// from spacing; see Constants.
	cols, rows := zoneGrid(in.ZoneCount)
	r.ZoneLengthEWM = in.FieldLengthEWM / float64(cols)
	r.ZoneWidthNSM = in.FieldWidthNSM / float64(rows)
	r.SprinklersPerLateral = c.SprinklersPerLateral
	r.LateralsPerZone = c.LateralsPerZone
	r.SprinklersPerZone = c.SprinklersPerLateral * c.LateralsPerZone
	r.SprinklersTotal = r.SprinklersPerZone * in.ZoneCount

	// One zone runs at a time, so the pump sees zone flow.
	r.ZoneFlowGPM = r.TotalFlowGPM / float64(in.ZoneCount)
	r.ZoneFlowM3S = units.M3sFromGpm(r.ZoneFlowGPM)
	r.ZoneFlowLs = units.LpsFromGpm(r.ZoneFlowGPM)
	r.ZoneFlowM3Hr = units.M3hrFromGpm(r.ZoneFlowGPM)
	r.SprinklerFlowLs = r.ZoneFlowLs / float64(r.SprinklersPerZone)

	// Total dynamic head: the hydrostatic end-of-lateral requirement plus the
	// four fixed friction and fitting allowances, nothing else.
	r.EndHeadM = units.HeadMFromKPa(in.EndLateralPressureKPa)
	r.LateralLossM = c.LateralLossM
	r.SubmainLossM = c.SubmainLossM
	r.MainlineLossM = c.MainlineLossM
	r.FittingsLossM = c.FittingsLossM
	r.TotalHeadM = r.EndHeadM + r.LateralLossM + r.SubmainLossM + r.MainlineLossM + r.FittingsLossM
	r.TotalHeadFt = units.FtFromM(r.TotalHeadM)

	// Pump power in US units.
	r.PumpEfficiency = c.PumpEfficiency
	r.BrakeHP = (r.ZoneFlowGPM * r.TotalHeadFt) / (3960.0 * c.PumpEfficiency)
	r.MotorHP = motorSize(r.BrakeHP)

	fractions := c.CurveFractions
	if len(fractions) == 0 {
		fractions = []float64{0.8, 1.0, 1.2}
	}
	r.CurvePoints = SystemCurve(r, fractions)

	return r, nil
}

// zoneGrid maps a zone count to the field partition grid. The reference
// scenario splits the field 2x2; even counts keep two columns east-west.
func zoneGrid(n int) (cols, rows int) {
	switch {
	case n == 1:
		return 1, 1
	case n%2 == 0:
		return 2, n / 2
	default:
		return n, 1
	}
}

func motorSize(bhp float64) float64 {
	for _, s := range motorSizesHP {
		if s >= bhp {
			return s
		}
	}
	return math.Ceil(bhp)
}
