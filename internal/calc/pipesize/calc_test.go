package pipesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Flows from the reference design exercise.
const (
	halfLateralFlow = 0.00624593 // 99 gpm over a 100 m half-lateral
	halfSubmainFlow = 0.004932   // 78.18 gpm over a 125 m half-submain
	mainlineFlow    = 0.0098643  // 156.35 gpm over the 1000 m mainline
)

func TestHeadLossAgainstSizingTables(t *testing.T) {
	cases := []struct {
		name     string
		flow     float64
		length   float64
		diameter float64
		wantLoss float64
		wantVel  float64
	}{
		{"lateral 50mm", halfLateralFlow, 100, 0.050, 23.3, 3.18},
		{"lateral 65mm", halfLateralFlow, 100, 0.065, 6.48, 1.88},
		{"lateral 80mm", halfLateralFlow, 100, 0.080, 2.36, 1.24},
		{"lateral 100mm", halfLateralFlow, 100, 0.100, 0.795, 0.795},
		{"submain 100mm", halfSubmainFlow, 125, 0.100, 0.642, 0.628},
		{"submain 125mm", halfSubmainFlow, 125, 0.125, 0.217, 0.402},
		{"submain 150mm", halfSubmainFlow, 125, 0.150, 0.089, 0.279},
		{"mainline 100mm", mainlineFlow, 1000, 0.100, 18.54, 1.256},
		{"mainline 150mm", mainlineFlow, 1000, 0.150, 2.574, 0.558},
		{"mainline 200mm", mainlineFlow, 1000, 0.200, 0.634, 0.314},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.wantLoss, HeadLoss(tc.flow, tc.length, PVCRoughness, tc.diameter), 0.01)
			assert.InEpsilon(t, tc.wantVel, Velocity(tc.flow, tc.diameter), 0.01)
		})
	}
}

func TestSelectDiameter(t *testing.T) {
	t.Run("lateral picks 100mm", func(t *testing.T) {
		sel, err := SelectDiameter(halfLateralFlow, 100, PVCRoughness,
			Nominals(25, 32, 40, 50, 65, 80, 100), LateralBand, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, sel.NominalMM)
		assert.InEpsilon(t, 0.795, sel.HeadLossM, 0.01)
		assert.Len(t, sel.Rejected, 6)
		// 80 mm sits inside the velocity band but loses too much head.
		last := sel.Rejected[5]
		assert.Equal(t, 80.0, last.NominalMM)
		assert.Equal(t, "head loss above ceiling", last.Reason)
		assert.Equal(t, "velocity above band", sel.Rejected[0].Reason)
	})

	t.Run("submain picks 100mm", func(t *testing.T) {
		sel, err := SelectDiameter(halfSubmainFlow, 125, PVCRoughness,
			Nominals(100, 125, 150), SubmainBand, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, sel.NominalMM)
		assert.InDelta(t, 0.628, sel.VelocityMS, 0.01)
		assert.Empty(t, sel.Rejected)
	})

	t.Run("mainline picks 150mm under 3m ceiling", func(t *testing.T) {
		sel, err := SelectDiameter(mainlineFlow, 1000, PVCRoughness,
			Nominals(100, 150, 200), MainlineBand, 3.0)
		require.NoError(t, err)
		assert.Equal(t, 150.0, sel.NominalMM)
		assert.InEpsilon(t, 2.574, sel.HeadLossM, 0.01)
		require.Len(t, sel.Rejected, 1)
		assert.Equal(t, "head loss above ceiling", sel.Rejected[0].Reason)
	})

	t.Run("no candidate qualifies", func(t *testing.T) {
		_, err := SelectDiameter(mainlineFlow, 1000, PVCRoughness,
			Nominals(25, 32), MainlineBand, 3.0)
		assert.Error(t, err)
	})

	t.Run("zero roughness defaults to PVC", func(t *testing.T) {
		sel, err := SelectDiameter(mainlineFlow, 1000, 0, Nominals(150), MainlineBand, 3.0)
		require.NoError(t, err)
		assert.InEpsilon(t, 2.574, sel.HeadLossM, 0.01)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := SelectDiameter(0, 1000, PVCRoughness, Nominals(150), MainlineBand, 3.0)
		assert.Error(t, err)
		_, err = SelectDiameter(mainlineFlow, 0, PVCRoughness, Nominals(150), MainlineBand, 3.0)
		assert.Error(t, err)
		_, err = SelectDiameter(mainlineFlow, 1000, PVCRoughness, nil, MainlineBand, 3.0)
		assert.Error(t, err)
	})
}
