package pipesize

import (
	"fmt"
	"math"
)

// Hazen-Williams exponents and the roughness coefficient assumed for new PVC.
const (
	FlowExponent     = 1.852
	DiameterExponent = 4.87
	PVCRoughness     = 130.0
)

// Velocity bands considered acceptable for each pipeline role (m/s).
var (
	LateralBand  = Band{MinMS: 0.7, MaxMS: 1.5}
	SubmainBand  = Band{MinMS: 0.5, MaxMS: 1.5}
	MainlineBand = Band{MinMS: 0.5, MaxMS: 1.5}
)

type Band struct {
	MinMS float64 `json:"min_m_s"`
	MaxMS float64 `json:"max_m_s"`
}

type Candidate struct {
	NominalMM float64 `json:"nominal_mm"`
	DiameterM float64 `json:"diameter_m"`
}

// Rejection records why a candidate diameter was passed over.
type Rejection struct {
	NominalMM  float64 `json:"nominal_mm"`
	HeadLossM  float64 `json:"head_loss_m"`
	VelocityMS float64 `json:"velocity_m_s"`
	Reason     string  `json:"reason"`
}

type Selection struct {
	NominalMM  float64     `json:"nominal_mm"`
	DiameterM  float64     `json:"diameter_m"`
	HeadLossM  float64     `json:"head_loss_m"`
	VelocityMS float64     `json:"velocity_m_s"`
	Rejected   []Rejection `json:"rejected"`
}

// HeadLoss returns the Hazen-Williams friction loss in metres.
// Flow in m^3/s, length and diameter in metres.
func HeadLoss(flowM3s, lengthM, c, diameterM float64) float64 {
	return 10.67 * lengthM * math.Pow(flowM3s, FlowExponent) /
		(math.Pow(c, FlowExponent) * math.Pow(diameterM, DiameterExponent))
}

// Velocity returns the mean flow velocity in m/s for a circular pipe.
func Velocity(flowM3s, diameterM float64) float64 {
	return flowM3s / (math.Pi * diameterM * diameterM / 4.0)
}

// Nominals builds a candidate list from nominal sizes in millimetres,
// taking the bore equal to the nominal size.
func Nominals(mm ...float64) []Candidate {
	out := make([]Candidate, 0, len(mm))
	for _, n := range mm {
		out = append(out, Candidate{NominalMM: n, DiameterM: n / 1000.0})
	}
	return out
}

// SelectDiameter picks the smallest candidate whose velocity falls inside the
// band and whose head loss stays under the ceiling. Candidates must be sorted
// smallest first. The losses and velocities of rejected candidates are kept so
// the selection can be narrated.
func SelectDiameter(flowM3s, lengthM, c float64, candidates []Candidate, band Band, lossCeilingM float64) (Selection, error) {
	if flowM3s <= 0 {
		return Selection{}, fmt.Errorf("invalid flow")
	}
	if lengthM <= 0 {
		return Selection{}, fmt.Errorf("invalid length")
	}
	if c <= 0 {
		c = PVCRoughness
	}
	if len(candidates) == 0 {
		return Selection{}, fmt.Errorf("no candidates provided")
	}

	var rejected []Rejection
	for _, cand := range candidates {
		hf := HeadLoss(flowM3s, lengthM, c, cand.DiameterM)
		v := Velocity(flowM3s, cand.DiameterM)
		switch {
		case v > band.MaxMS:
			rejected = append(rejected, Rejection{cand.NominalMM, hf, v, "velocity above band"})
		case v < band.MinMS:
			rejected = append(rejected, Rejection{cand.NominalMM, hf, v, "velocity below band"})
		case lossCeilingM > 0 && hf > lossCeilingM:
			rejected = append(rejected, Rejection{cand.NominalMM, hf, v, "head loss above ceiling"})
		default:
			return Selection{
				NominalMM:  cand.NominalMM,
				DiameterM:  cand.DiameterM,
				HeadLossM:  hf,
				VelocityMS: v,
				Rejected:   rejected,
			}, nil
		}
	}
	return Selection{}, fmt.Errorf("no candidate satisfies the velocity band and loss ceiling")
}
