package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Hydrus/internal/calc/design"
)

func referenceResults(t *testing.T) design.Results {
	t.Helper()
	r, err := design.Calculate(design.Inputs{
		FieldLengthEWM:        500,
		FieldWidthNSM:         400,
		DesignCropETMMDay:     15,
		EvaporationLossPct:    12,
		IrrigationTimeHrsDay:  24,
		SprinklerSpacingXM:    6.1,
		SprinklerSpacingYM:    6.1,
		ZoneCount:             4,
		EndLateralPressureKPa: 103,
	}, design.DefaultConstants())
	require.NoError(t, err)
	return r
}

func TestRenderIsDeterministic(t *testing.T) {
	r := referenceResults(t)
	assert.Equal(t, Render(r), Render(r))
}

func TestRenderSectionOrder(t *testing.T) {
	text := Render(referenceResults(t))
	landmarks := []string{
		"SPRINKLER IRRIGATION HYDRAULIC DESIGN",
		"Total crop water requirement and pump flow",
		"Zone geometry - sprinkler and layout counts",
		"Typical design targets:",
		"Lateral Sizing - Head Loss Across Half-Lateral:",
		"Submain Sizing - Head Loss Across Half-Submain:",
		"Mainline Sizing - Head Loss Across",
		"Finding total head:",
		"Construction of the system curve:",
		"Pump selection, operating point, efficiency and motor size",
		"SUMMARY TABLE:",
	}
	last := -1
	for _, l := range landmarks {
		idx := strings.Index(text, l)
		require.GreaterOrEqual(t, idx, 0, "missing section landmark %q", l)
		assert.Greater(t, idx, last, "section %q out of order", l)
		last = idx
	}
}

func TestRenderDerivationValues(t *testing.T) {
	text := Render(referenceResults(t))

	assert.Contains(t, text, "Area(A) = 400 x 500 = 200000 m^2 (= 49.42 acres).")
	assert.Contains(t, text, "= 625.41 gpm.")
	assert.Contains(t, text, "41 laterals x 33 sprinklers/lateral = 1353 sprinklers (5412 in total).")
	assert.Contains(t, text, "TDH = 10.50 + 0.795 + 0.642 + 2.574 + 4.0 = 18.515 m.")
	assert.Contains(t, text, "Design Point (100%)")
	assert.Contains(t, text, "80% of design flow")
	assert.Contains(t, text, "120% of design flow")
	assert.Contains(t, text, "recommended motor 5 HP.")
	assert.Contains(t, text, "Recommended Motor Size | N/A | 5 HP | Next standard size above BHP.")
	assert.NotContains(t, text, "NaN")
	assert.NotContains(t, text, "Inf")
}

func TestRenderFollowsInputs(t *testing.T) {
	r := referenceResults(t)
	base := Render(r)

	in := r.Inputs
	in.ZoneCount = 2
	other, err := design.Calculate(in, design.DefaultConstants())
	require.NoError(t, err)
	changed := Render(other)

	assert.NotEqual(t, base, changed)
	assert.Contains(t, changed, "Field partition: 2 zones")
}

func TestWorkbook(t *testing.T) {
	r := referenceResults(t)
	f, err := Workbook(r)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Section/Parameter", rows[0][0])
	assert.Len(t, rows, len(summaryRows(r))+1)

	curve, err := f.GetRows("System Curve")
	require.NoError(t, err)
	require.Len(t, curve, len(r.CurvePoints)+1)
	assert.Equal(t, "Fraction", curve[0][0])
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(referenceResults(t), Meta{Project: "North field", Author: "jdoe"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
