package design

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type calcRequest struct {
	Inputs
	Constants *Constants `json:"constants"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	constants := DefaultConstants()
	if req.Constants != nil {
		constants = *req.Constants
	}
	res, err := Calculate(req.Inputs, constants)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
