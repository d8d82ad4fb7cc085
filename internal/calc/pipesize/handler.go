package pipesize

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	FlowM3s      float64     `json:"flow_m3_s"`
	LengthM      float64     `json:"length_m"`
	RoughnessC   float64     `json:"roughness_c"`
	Candidates   []Candidate `json:"candidates"`
	NominalsMM   []float64   `json:"nominals_mm"`
	Band         Band        `json:"band"`
	LossCeilingM float64     `json:"loss_ceiling_m"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	candidates := input.Candidates
	if len(candidates) == 0 {
		candidates = Nominals(input.NominalsMM...)
	}
	band := input.Band
	if band.MaxMS <= 0 {
		band = MainlineBand
	}
	res, err := SelectDiameter(input.FlowM3s, input.LengthM, input.RoughnessC, candidates, band, input.LossCeilingM)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
