package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondError maps the domain failure kinds onto HTTP statuses. Every
// failure reaches the client with a distinguishable kind; nothing is
// swallowed here.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyReturned),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrEmailInUse),
		errors.Is(err, domain.ErrInvalidCredentials):
		respondMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
