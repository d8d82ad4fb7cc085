package report

import (
	"fmt"
	"strings"

	"Hydrus/internal/calc/design"
	"Hydrus/internal/calc/pipesize"
	"Hydrus/internal/units"
)

// The report is a fixed sequence of sections, each a pure function of the
// computed results. Rendering the same results twice yields identical text.
type section struct {
	name   string
	render func(*strings.Builder, design.Results)
}

var sections = []section{
	{"header", header},
	{"water requirement", waterRequirement},
	{"zone geometry", zoneGeometry},
	{"design targets", designTargets},
	{"lateral sizing", lateralSizing},
	{"submain sizing", submainSizing},
	{"mainline sizing", mainlineSizing},
	{"total head", totalHead},
	{"system curve", systemCurve},
	{"pump selection", pumpSelection},
	{"summary", summary},
}

// Render produces the full design narrative for one computed scenario.
func Render(r design.Results) string {
	var b strings.Builder
	for _, s := range sections {
		s.render(&b, r)
	}
	return b.String()
}

func header(b *strings.Builder, r design.Results) {
	in := r.Inputs
	b.WriteString("SPRINKLER IRRIGATION HYDRAULIC DESIGN\n\n")
	b.WriteString("Data given:\n\n")
	b.WriteString("Parameter | Value\n")
	b.WriteString("---|---\n")
	fmt.Fprintf(b, "Field length E-W | %g m\n", in.FieldLengthEWM)
	fmt.Fprintf(b, "Field width N-S | %g m\n", in.FieldWidthNSM)
	fmt.Fprintf(b, "Design crop ET | %g mm/day\n", in.DesignCropETMMDay)
	fmt.Fprintf(b, "Evaporation loss | %g%%\n", in.EvaporationLossPct)
	fmt.Fprintf(b, "Irrigation time | %g h/day\n", in.IrrigationTimeHrsDay)
	fmt.Fprintf(b, "Sprinkler spacing | %g m x %g m\n", in.SprinklerSpacingXM, in.SprinklerSpacingYM)
	fmt.Fprintf(b, "Zones | %d\n", in.ZoneCount)
	fmt.Fprintf(b, "End-of-lateral pressure | %g kPa\n\n", in.EndLateralPressureKPa)
}

func waterRequirement(b *strings.Builder, r design.Results) {
	in := r.Inputs
	b.WriteString("Total crop water requirement and pump flow (daily and instantaneous)\n\n")
	fmt.Fprintf(b, "1. Net crop (ET)/day = %g mm/day = %g m/day.\n", in.DesignCropETMMDay, in.DesignCropETMMDay/1000)
	fmt.Fprintf(b, "2. Area(A) = %g x %g = %.0f m^2 (= %.2f acres).\n", in.FieldWidthNSM, in.FieldLengthEWM, r.TotalAreaM2, r.TotalAreaAcres)
	b.WriteString("3. (volume) Net crop water required per day:\n")
	fmt.Fprintf(b, "V_crop = Area x ET = %.0f m^2 x %g m/day = %.0f m^3/day.\n", r.TotalAreaM2, in.DesignCropETMMDay/1000, r.CropVolumeM3Day)
	fmt.Fprintf(b, "4. Sprinkler evaporation loss (%g%%). The pumped volume requirement:\n", in.EvaporationLossPct)
	fmt.Fprintf(b, "V_pump = V_crop / (1 - %g) = %.0f / %g = %.3f m^3/day.\n\n", in.EvaporationLossPct/100, r.CropVolumeM3Day, 1-in.EvaporationLossPct/100, r.PumpVolumeM3Day)
	fmt.Fprintf(b, "* Per day: %.2f m^3/day.\n", r.PumpVolumeM3Day)
	fmt.Fprintf(b, "* Per second: %.7f m^3/s.\n", r.TotalFlowM3S)
	fmt.Fprintf(b, "* Gallons/minute: %.7f m^3/s x %g gpm/(m^3/s) = %.2f gpm.\n", r.TotalFlowM3S, units.M3sToGPM, r.TotalFlowGPM)
	fmt.Fprintf(b, "* Per hour: %.2f / 24 = %.3f m^3/hr.\n", r.PumpVolumeM3Day, r.TotalFlowM3Hr)
	fmt.Fprintf(b, "* Net crop need = %.0f m^3/day.\n\n", r.CropVolumeM3Day)
}

func zoneGeometry(b *strings.Builder, r design.Results) {
	in := r.Inputs
	b.WriteString("Zone geometry - sprinkler and layout counts\n\n")
	fmt.Fprintf(b, "Field partition: %d zones, one active at a time. Each zone = %.0f m^2.\n", in.ZoneCount, r.TotalAreaM2/float64(in.ZoneCount))
	fmt.Fprintf(b, "* Zone N-S length = %.0f m, E-W length = %.0f m, spacing %g m x %g m.\n", r.ZoneWidthNSM, r.ZoneLengthEWM, in.SprinklerSpacingXM, in.SprinklerSpacingYM)
	fmt.Fprintf(b, "* Sprinklers per lateral (lateral runs N-S): %d.\n", r.SprinklersPerLateral)
	fmt.Fprintf(b, "* Laterals per zone (across E-W): %d.\n", r.LateralsPerZone)
	fmt.Fprintf(b, "So per zone: %d laterals x %d sprinklers/lateral = %d sprinklers (%d in total).\n\n", r.LateralsPerZone, r.SprinklersPerLateral, r.SprinklersPerZone, r.SprinklersTotal)
	fmt.Fprintf(b, "Zone flow Q_zone = Q_total / %d = %.2f gpm = %.3f L/s.\n", in.ZoneCount, r.ZoneFlowGPM, r.ZoneFlowLs)
	fmt.Fprintf(b, "Required sprinkler flow q_s = Q_zone / N_spr = %.3f / %d = %.4f L/s.\n\n", r.ZoneFlowLs, r.SprinklersPerZone, r.SprinklerFlowLs)
}

func designTargets(b *strings.Builder, _ design.Results) {
	b.WriteString("Typical design targets:\n")
	b.WriteString("Component | Recommended Velocity | Notes\n")
	b.WriteString("---|---|---\n")
	fmt.Fprintf(b, "Laterals | %.1f to %.1f m/s | Lower is acceptable; higher velocities risk pipe damage and erosion.\n",
		pipesize.LateralBand.MinMS, pipesize.LateralBand.MaxMS)
	fmt.Fprintf(b, "Submains & Mainlines | %.1f to %.1f m/s | Tradeoff between pipeline cost and head loss.\n",
		pipesize.MainlineBand.MinMS, pipesize.MainlineBand.MaxMS)
	fmt.Fprintf(b, "Hazen-Williams C | %.0f | Assumed for new PVC pipe.\n\n", pipesize.PVCRoughness)
	b.WriteString("Using Hazen-Williams\n")
	b.WriteString("h_f = 10.67 * L * (Q^1.852) / (C^1.852 * D^4.87)\n")
	b.WriteString("where: h_f in meters, L in meters, Q in m^3/s, D in meters.\n\n")
}

func writeSizingTable(b *strings.Builder, caption, lossHeader string, rows []sizingRow) {
	b.WriteString(caption + "\n")
	fmt.Fprintf(b, "Nominal | D (m) | %s | velocity (m/s)\n", lossHeader)
	b.WriteString("---|---|---|---\n")
	for _, row := range rows {
		fmt.Fprintf(b, "%s | %.3f | %s | %s m/s\n", row.Nominal, row.DiameterM, row.LossText, trimFloat(row.VelocityMS))
	}
}

func lateralSizing(b *strings.Builder, r design.Results) {
	fmt.Fprintf(b, "Design lateral half-flow: %g gpm = %g m^3/s over half-lateral length L = %.0f m.\n\n",
		halfLateralFlowGPM, halfLateralFlowM3s, halfLateralLengthM)
	writeSizingTable(b, "Lateral Sizing - Head Loss Across Half-Lateral:", "hf (half-lateral, 100 m) (m)", lateralRows)
	fmt.Fprintf(b, "Selected lateral diameter %s (%s).\n", lateralPipeMetric, lateralPipeUS)
	fmt.Fprintf(b, "* The 4\" pipe yields %.3f m friction loss over the %.0f m half-lateral at %s m/s.\n",
		r.LateralLossM, halfLateralLengthM, trimFloat(maxLateralVelocityMS))
	fmt.Fprintf(b, "* The 3\" (80 mm) pipe loses %.2f m - too high, unacceptably reducing sprinkler pressure.\n\n", lateral80mmLossM)
}

func submainSizing(b *strings.Builder, r design.Results) {
	fmt.Fprintf(b, "Half-submain flow = zone flow / 2 = %g gpm = %g m^3/s.\n", halfSubmainFlowGPM, halfSubmainFlowM3s)
	fmt.Fprintf(b, "Half-submain length = %.0f m.\n\n", halfSubmainLengthM)
	writeSizingTable(b, "Submain Sizing - Head Loss Across Half-Submain:", "hf (125 m, half-submain) (m)", submainRows)
	fmt.Fprintf(b, "Selected submain diameter %s (%s).\n", submainPipeMetric, submainPipeUS)
	fmt.Fprintf(b, "* Half-submain loss is %.3f m; combined with the lateral half-loss the worst-case run total is %.3f m.\n\n",
		r.SubmainLossM, r.SubmainLossM+r.LateralLossM)
}

func mainlineSizing(b *strings.Builder, r design.Results) {
	writeSizingTable(b, fmt.Sprintf("Mainline Sizing - Head Loss Across %.0f m at %.2f gpm:", mainlineLengthM, r.ZoneFlowGPM),
		"hf (1000 m) (m)", mainlineRows)
	fmt.Fprintf(b, "Selection: %s (%s) mainline. It gives hf = %.2f m, below the %.0f m limit, and is economical.\n\n",
		mainlinePipeMetric, mainlinePipeUS, r.MainlineLossM, mainlineCeilingM)
}

func totalHead(b *strings.Builder, r design.Results) {
	in := r.Inputs
	b.WriteString("Finding total head:\n")
	b.WriteString("Total head (pump TDH): assemble static + friction + fittings\n\n")
	fmt.Fprintf(b, "* Required head at sprinkler (static) H_end = %g kPa = %.2f m.\n", in.EndLateralPressureKPa, r.EndHeadM)
	fmt.Fprintf(b, "* Half-lateral friction (D = %s) = %.3f m.\n", lateralPipeMetric, r.LateralLossM)
	fmt.Fprintf(b, "* Half-submain friction (D = %s) = %.3f m.\n", submainPipeMetric, r.SubmainLossM)
	fmt.Fprintf(b, "* Mainline friction (%.0f m, D = %s) = %.3f m.\n", mainlineLengthM, mainlinePipeMetric, r.MainlineLossM)
	fmt.Fprintf(b, "* Valve & pump fittings (given allowances) = %.1f m.\n\n", r.FittingsLossM)
	b.WriteString("Total TDH:\n")
	fmt.Fprintf(b, "TDH = %.2f + %.3f + %.3f + %.3f + %.1f = %.3f m.\n\n",
		r.EndHeadM, r.LateralLossM, r.SubmainLossM, r.MainlineLossM, r.FittingsLossM, r.TotalHeadM)
	b.WriteString("Changing TDH(m) to feet (for pump curves / horsepower):\n")
	fmt.Fprintf(b, "H_ft = %.3f x %g = %.2f ft.\n\n", r.TotalHeadM, units.MToFt, r.TotalHeadFt)
	fmt.Fprintf(b, "Operating flow design (one zone active) = %.2f gpm at %.2f m (%.2f ft).\n\n",
		r.ZoneFlowGPM, r.TotalHeadM, r.TotalHeadFt)
}

func systemCurve(b *strings.Builder, r design.Results) {
	b.WriteString("Construction of the system curve:\n")
	flows := make([]string, 0, len(r.CurvePoints))
	for _, p := range r.CurvePoints {
		s := fmt.Sprintf("%.2f", p.FlowGPM)
		if p.Fraction == 1.0 {
			s += " (design)"
		}
		flows = append(flows, s)
	}
	fmt.Fprintf(b, "Flows (gpm): %s.\n", strings.Join(flows, ", "))
	b.WriteString("For each flow, every friction-loss term is scaled by (Q/Q_design)^1.852 and the TDH reassembled as: TDH(Q) = H_end + h_lat(Q) + h_sub(Q) + h_main(Q) + h_fittings.\n\n")
	b.WriteString("System Curve Points:\n")
	b.WriteString("Flow Rate (gpm) | Flow Rate (m3/hr) | Total Dynamic Head (m) | Total Dynamic Head (ft) | Comments\n")
	b.WriteString("---|---|---|---|---\n")
	for _, p := range r.CurvePoints {
		comment := fmt.Sprintf("%.0f%% of design flow", p.Fraction*100)
		if p.Fraction == 1.0 {
			comment = "Design Point (100%)"
		}
		fmt.Fprintf(b, "%.2f | %.2f | %.2f | %.2f | %s\n", p.FlowGPM, p.FlowM3Hr, p.HeadM, p.HeadFt, comment)
	}
	b.WriteString("\n")
}

func pumpSelection(b *strings.Builder, r design.Results) {
	b.WriteString("Pump selection, operating point, efficiency and motor size\n\n")
	fmt.Fprintf(b, "Design operating point: %.2f ft (%.2f m).\n", r.TotalHeadFt, r.TotalHeadM)
	b.WriteString("Estimating pump power: apply the hydraulic brake horsepower (BHP) formula in US units:\n")
	fmt.Fprintf(b, "BHP = (Q(gpm) x H(ft)) / (3960 x eta), with pump efficiency eta = %.2f.\n", r.PumpEfficiency)
	fmt.Fprintf(b, "BHP = %.2f x %.2f / (3960 x %.2f) = %.2f HP.\n", r.ZoneFlowGPM, r.TotalHeadFt, r.PumpEfficiency, r.BrakeHP)
	b.WriteString("Select the next standard motor size above the calculated BHP:\n")
	fmt.Fprintf(b, "recommended motor %s HP.\n", trimFloat(r.MotorHP))
}

func summary(b *strings.Builder, r design.Results) {
	b.WriteString("\nSUMMARY TABLE:\n")
	b.WriteString("Section/Parameter | Value (Metric) | Value (US Customary) | Notes\n")
	b.WriteString("---|---|---|---\n")
	for _, row := range summaryRows(r) {
		b.WriteString(strings.Join(row, " | ") + "\n")
	}
}

// summaryRows feeds both the text summary and the Excel export.
func summaryRows(r design.Results) [][]string {
	in := r.Inputs
	return [][]string{
		{"I. Property & General Requirements", "", "", ""},
		{"Area", fmt.Sprintf("%.0f m2", r.TotalAreaM2), fmt.Sprintf("%.2f acres", r.TotalAreaAcres),
			fmt.Sprintf("%g m (N-S) x %g m (E-W)", in.FieldWidthNSM, in.FieldLengthEWM)},
		{"Design Crop ET (Net)", fmt.Sprintf("%g mm/day", in.DesignCropETMMDay), "N/A", ""},
		{"Evaporation Loss", fmt.Sprintf("%g%%", in.EvaporationLossPct), fmt.Sprintf("%g%%", in.EvaporationLossPct), ""},
		{"Operation Time", fmt.Sprintf("%g h/day", in.IrrigationTimeHrsDay), fmt.Sprintf("%g h/day", in.IrrigationTimeHrsDay), ""},
		{"Required Pumped Flow (Qtotal)", fmt.Sprintf("%.5f m3/s (%.2f m3/day)", r.TotalFlowM3S, r.PumpVolumeM3Day),
			fmt.Sprintf("%.2f gpm", r.TotalFlowGPM), ""},
		{"Active Zone Flow (Qzone)", fmt.Sprintf("%.5f m3/s (%.2f m3/hr)", r.ZoneFlowM3S, r.ZoneFlowM3Hr),
			fmt.Sprintf("%.2f gpm", r.ZoneFlowGPM), fmt.Sprintf("%d zones, 1 active.", in.ZoneCount)},
		{"Lateral End Pressure", fmt.Sprintf("%g kPa", in.EndLateralPressureKPa),
			fmt.Sprintf("%.2f m (%.2f ft)", r.EndHeadM, units.FtFromM(r.EndHeadM)), "Required minimum pressure."},
		{"Hazen-Williams C", fmt.Sprintf("%.0f", pipesize.PVCRoughness), fmt.Sprintf("%.0f", pipesize.PVCRoughness), "Assumed for new PVC."},
		{"II. Hydraulic Design Summary", "", "", ""},
		{"Lateral Pipe Size", lateralPipeMetric, lateralPipeUS, ""},
		{"Max Lateral Velocity", fmt.Sprintf("%s m/s", trimFloat(maxLateralVelocityMS)), "N/A", "For the 100 m half-lateral."},
		{"Submain Pipe Size", submainPipeMetric, submainPipeUS, ""},
		{"Max Submain Velocity", fmt.Sprintf("%s m/s", trimFloat(maxSubmainVelocityMS)), "N/A", "For the 125 m half-submain."},
		{"Mainline Pipe Size", mainlinePipeMetric, mainlinePipeUS, ""},
		{"Mainline Head Loss", fmt.Sprintf("%.3f m", r.MainlineLossM), fmt.Sprintf("%.2f ft", units.FtFromM(r.MainlineLossM)),
			"Over the 1000 m run; meets the 3 m limit."},
		{"III. Pump & Motor Selection", "", "", ""},
		{"Required TDH at Design Q", fmt.Sprintf("%.2f m", r.TotalHeadM), fmt.Sprintf("%.2f ft", r.TotalHeadFt),
			"Static head plus friction and fittings."},
		{"Estimated BHP", "N/A", fmt.Sprintf("%.2f HP", r.BrakeHP), fmt.Sprintf("At %.0f%% pump efficiency.", r.PumpEfficiency*100)},
		{"Recommended Motor Size", "N/A", fmt.Sprintf("%s HP", trimFloat(r.MotorHP)), "Next standard size above BHP."},
	}
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
