package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference scenario: 500x400 m field, 15 mm/day ET, 12% evaporation
// loss, four zones, 103 kPa end-of-lateral pressure.
func referenceInputs() Inputs {
	return Inputs{
		FieldLengthEWM:        500,
		FieldWidthNSM:         400,
		DesignCropETMMDay:     15,
		EvaporationLossPct:    12,
		IrrigationTimeHrsDay:  24,
		SprinklerSpacingXM:    6.1,
		SprinklerSpacingYM:    6.1,
		ZoneCount:             4,
		EndLateralPressureKPa: 103,
	}
}

func TestCalculateReferenceScenario(t *testing.T) {
	r, err := Calculate(referenceInputs(), DefaultConstants())
	require.NoError(t, err)

	assert.Equal(t, 200000.0, r.TotalAreaM2)
	assert.InDelta(t, 49.42, r.TotalAreaAcres, 0.01)
	assert.InDelta(t, 17.045, r.GrossDepthMMDay, 0.001)
	assert.InDelta(t, 3000.0, r.CropVolumeM3Day, 1e-9)
	assert.InDelta(t, 3409.09, r.PumpVolumeM3Day, 0.01)

	assert.InDelta(t, 0.03946, r.TotalFlowM3S, 0.00001)
	assert.InDelta(t, 625.41, r.TotalFlowGPM, 0.05)
	assert.InDelta(t, 142.05, r.TotalFlowM3Hr, 0.01)

	assert.Equal(t, 250.0, r.ZoneLengthEWM)
	assert.Equal(t, 200.0, r.ZoneWidthNSM)
	assert.Equal(t, 1353, r.SprinklersPerZone)
	assert.Equal(t, 5412, r.SprinklersTotal)

	assert.InDelta(t, 156.35, r.ZoneFlowGPM, 0.05)
	assert.InDelta(t, 9.864, r.ZoneFlowLs, 0.005)
	assert.InDelta(t, 0.00729, r.SprinklerFlowLs, 0.00001)

	assert.InDelta(t, 10.50, r.EndHeadM, 0.01)
	assert.InDelta(t, 18.515, r.TotalHeadM, 0.001)
	assert.InDelta(t, 60.73, r.TotalHeadFt, 0.05)

	// BHP = Q(gpm) x H(ft) / (3960 x eta) at eta = 0.70.
	assert.InDelta(t, r.ZoneFlowGPM*r.TotalHeadFt/(3960*0.70), r.BrakeHP, 1e-12)
	assert.InDelta(t, 3.43, r.BrakeHP, 0.01)
	assert.Equal(t, 5.0, r.MotorHP)
}

func TestTotalHeadIsStrictSum(t *testing.T) {
	for _, in := range []Inputs{
		referenceInputs(),
		{250, 100, 8, 5, 20, 4, 4, 2, 210},
		{1000, 800, 22, 30, 24, 9, 9, 8, 150},
	} {
		r, err := Calculate(in, DefaultConstants())
		require.NoError(t, err)
		sum := r.EndHeadM + r.LateralLossM + r.SubmainLossM + r.MainlineLossM + r.FittingsLossM
		assert.Equal(t, sum, r.TotalHeadM)
	}
}

func TestCalculateIsPure(t *testing.T) {
	a, err := Calculate(referenceInputs(), DefaultConstants())
	require.NoError(t, err)
	b, err := Calculate(referenceInputs(), DefaultConstants())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBoundaryScenarios(t *testing.T) {
	t.Run("no evaporation loss", func(t *testing.T) {
		in := referenceInputs()
		in.EvaporationLossPct = 0
		r, err := Calculate(in, DefaultConstants())
		require.NoError(t, err)
		assert.Equal(t, r.CropVolumeM3Day, r.PumpVolumeM3Day)
		assert.Equal(t, r.Inputs.DesignCropETMMDay, r.GrossDepthMMDay)
	})

	t.Run("single zone", func(t *testing.T) {
		in := referenceInputs()
		in.ZoneCount = 1
		r, err := Calculate(in, DefaultConstants())
		require.NoError(t, err)
		assert.Equal(t, r.TotalFlowGPM, r.ZoneFlowGPM)
		assert.Equal(t, in.FieldLengthEWM, r.ZoneLengthEWM)
		assert.Equal(t, in.FieldWidthNSM, r.ZoneWidthNSM)
	})
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Inputs)
		field  string
	}{
		{"full evaporation loss", func(in *Inputs) { in.EvaporationLossPct = 100 }, "evaporation_loss_pct"},
		{"negative evaporation loss", func(in *Inputs) { in.EvaporationLossPct = -1 }, "evaporation_loss_pct"},
		{"zero zones", func(in *Inputs) { in.ZoneCount = 0 }, "zone_count"},
		{"zero field length", func(in *Inputs) { in.FieldLengthEWM = 0 }, "field_length_ew_m"},
		{"negative pressure", func(in *Inputs) { in.EndLateralPressureKPa = -10 }, "end_lateral_pressure_kpa"},
		{"zero ET", func(in *Inputs) { in.DesignCropETMMDay = 0 }, "design_crop_et_mm_day"},
		{"bad irrigation time", func(in *Inputs) { in.IrrigationTimeHrsDay = 25 }, "irrigation_time_hrs_day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := referenceInputs()
			tc.mutate(&in)
			_, err := Calculate(in, DefaultConstants())
			require.Error(t, err)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}

	t.Run("bad pump efficiency", func(t *testing.T) {
		c := DefaultConstants()
		c.PumpEfficiency = 0
		_, err := Calculate(referenceInputs(), c)
		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "pump_efficiency", fieldErr.Field)
	})
}

func TestMotorSize(t *testing.T) {
	assert.Equal(t, 1.0, motorSize(0.4))
	assert.Equal(t, 5.0, motorSize(3.43))
	assert.Equal(t, 7.5, motorSize(7.5))
	assert.Equal(t, 27.0, motorSize(26.2))
}
