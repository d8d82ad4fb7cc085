package report

// Candidate evaluations carried over from the reference pipe-sizing exercise.
// The report narrates them as documented history; it never recomputes them.
// pipesize.SelectDiameter reproduces the same numbers and is tested against
// this table.

type sizingRow struct {
	Nominal    string
	DiameterM  float64
	LossText   string
	VelocityMS float64
}

// Head loss across the 100 m half-lateral at 99 gpm (0.0062459 m^3/s).
var lateralRows = []sizingRow{
	{`25 mm (1")`, 0.025, "680 m (unusable)", 12.7},
	{"32 mm", 0.032, "204 m (unusable)", 7.77},
	{"40 mm", 0.040, "69.0 m (unusable)", 4.97},
	{`50 mm (2")`, 0.050, "23.3 m", 3.18},
	{"65 mm", 0.065, "6.48 m", 1.88},
	{`80 mm (3")`, 0.080, "2.36 m", 1.24},
	{`100 mm (4")`, 0.100, "0.795 m", 0.795},
}

// Head loss across the 125 m half-submain at 78.18 gpm (0.004932 m^3/s).
var submainRows = []sizingRow{
	{`100 mm (4")`, 0.100, "0.642 m", 0.628},
	{`125 mm (5")`, 0.125, "0.217 m", 0.402},
	{`150 mm (6")`, 0.150, "0.089 m", 0.279},
}

// Head loss across the 1000 m mainline at the 156.35 gpm zone flow.
var mainlineRows = []sizingRow{
	{`100 mm (4")`, 0.100, "18.54 m (too large)", 1.256},
	{`150 mm (6")`, 0.150, "2.574 m", 0.558},
	{`200 mm (8")`, 0.200, "0.634 m", 0.314},
}

// Selections and segment geometry of the reference exercise.
const (
	lateralPipeMetric  = "100 mm"
	lateralPipeUS      = `4"`
	submainPipeMetric  = "100 mm"
	submainPipeUS      = `4"`
	mainlinePipeMetric = "150 mm"
	mainlinePipeUS     = `6"`

	halfLateralFlowGPM = 99.0
	halfLateralFlowM3s = 0.0062459
	halfLateralLengthM = 100.0
	halfSubmainFlowGPM = 78.18
	halfSubmainFlowM3s = 0.004932
	halfSubmainLengthM = 125.0
	mainlineLengthM    = 1000.0
	mainlineCeilingM   = 3.0

	lateral80mmLossM     = 2.36
	maxLateralVelocityMS = 0.795
	maxSubmainVelocityMS = 0.628
)
