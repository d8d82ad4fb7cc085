package design

import (
	"fmt"
	"math"
)

// FieldError reports which input field made the scenario uncomputable.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validate(in Inputs, c Constants) error {
	positives := []struct {
		field string
		value float64
	}{
		{"field_length_ew_m", in.FieldLengthEWM},
		{"field_width_ns_m", in.FieldWidthNSM},
		{"design_crop_et_mm_day", in.DesignCropETMMDay},
		{"sprinkler_spacing_x_m", in.SprinklerSpacingXM},
		{"sprinkler_spacing_y_m", in.SprinklerSpacingYM},
		{"end_lateral_pressure_kpa", in.EndLateralPressureKPa},
	}
	for _, p := range positives {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &FieldError{p.field, "must be a finite number"}
		}
		if p.value <= 0 {
			return &FieldError{p.field, "must be positive"}
		}
	}
	if in.EvaporationLossPct < 0 {
		return &FieldError{"evaporation_loss_pct", "must not be negative"}
	}
	if in.EvaporationLossPct >= 100 {
		return &FieldError{"evaporation_loss_pct", "must be below 100"}
	}
	if in.IrrigationTimeHrsDay <= 0 || in.IrrigationTimeHrsDay > 24 {
		return &FieldError{"irrigation_time_hrs_day", "must be between 0 and 24"}
	}
	if in.ZoneCount < 1 {
		return &FieldError{"zone_count", "must be at least 1"}
	}

	if c.PumpEfficiency <= 0 || c.PumpEfficiency > 1 {
		return &FieldError{"pump_efficiency", "must be in (0, 1]"}
	}
	if c.SprinklersPerLateral < 1 {
		return &FieldError{"sprinklers_per_lateral", "must be at least 1"}
	}
	if c.LateralsPerZone < 1 {
		return &FieldError{"laterals_per_zone", "must be at least 1"}
	}
	losses := []struct {
		field string
		value float64
	}{
		{"mainline_loss_m", c.MainlineLossM},
		{"fittings_loss_m", c.FittingsLossM},
		{"lateral_loss_m", c.LateralLossM},
		{"submain_loss_m", c.SubmainLossM},
	}
	for _, l := range losses {
		if math.IsNaN(l.value) || math.IsInf(l.value, 0) || l.value < 0 {
			return &FieldError{l.field, "must be a non-negative number"}
		}
	}
	for _, f := range c.CurveFractions {
		if f <= 0 {
			return &FieldError{"curve_fractions", "fractions must be positive"}
		}
	}
	return nil
}
