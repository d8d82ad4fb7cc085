package report

import (
	"encoding/json"
	"net/http"

	"Hydrus/internal/calc/design"
)

type Handler struct{}

type Input struct {
	design.Inputs
	Constants *design.Constants `json:"constants"`
	Meta      Meta              `json:"meta"`
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) (Input, design.Results, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Input{}, design.Results{}, false
	}
	constants := design.DefaultConstants()
	if input.Constants != nil {
		constants = *input.Constants
	}
	res, err := design.Calculate(input.Inputs, constants)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Input{}, design.Results{}, false
	}
	return input, res, true
}

// Text returns the plain-text report.
func (h *Handler) Text(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.compute(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(Render(res)))
}

// PDF returns the report typeset as a PDF attachment.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	input, res, ok := h.compute(w, r)
	if !ok {
		return
	}
	data, err := RenderPDF(res, input.Meta)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"design-report.pdf\"")
	w.Write(data)
}

// Excel returns the summary workbook as an xlsx attachment.
func (h *Handler) Excel(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.compute(w, r)
	if !ok {
		return
	}
	f, err := Workbook(res)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"design-summary.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}
