package http

import (
	"encoding/json"
	"net/http"

	"vidly-backend/internal/service"
)

// ReturnsHandler exposes the return workflow: look up the caller's open
// rental for a (customer, movie) pair, close it, and restock the movie.
type ReturnsHandler struct {
	svc service.ReturnService
}

func NewReturnsHandler(svc service.ReturnService) *ReturnsHandler {
	return &ReturnsHandler{svc: svc}
}

type returnRequest struct {
	CustomerID int32 `json:"customerId"`
	MovieID    int32 `json:"movieId"`
}

func (h *ReturnsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerID == 0 {
		respondMessage(w, http.StatusBadRequest, "customerId is required")
		return
	}
	if req.MovieID == 0 {
		respondMessage(w, http.StatusBadRequest, "movieId is required")
		return
	}

	rental, err := h.svc.ProcessReturn(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}
