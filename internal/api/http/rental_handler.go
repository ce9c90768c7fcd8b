package http

import (
	"encoding/json"
	"net/http"

	"vidly-backend/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

type rentalRequest struct {
	CustomerID int32 `json:"customerId"`
	MovieID    int32 `json:"movieId"`
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
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

	rental, err := h.svc.OpenRental(r.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}
