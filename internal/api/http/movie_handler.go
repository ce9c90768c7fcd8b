package http

import (
	"encoding/json"
	"net/http"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/service"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

type movieRequest struct {
	Title                string `json:"title"`
	GenreID              int32  `json:"genreId"`
	DailyRentalRateCents int32  `json:"dailyRentalRateCents"`
	NumberInStock        int32  `json:"numberInStock"`
}

func (req *movieRequest) validate() string {
	if req.Title == "" {
		return "title is required"
	}
	if req.GenreID == 0 {
		return "genreId is required"
	}
	if req.DailyRentalRateCents < 0 {
		return "dailyRentalRateCents must not be negative"
	}
	if req.NumberInStock < 0 {
		return "numberInStock must not be negative"
	}
	return ""
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.ListMovies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	movie, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	movie := &domain.Movie{
		Title:                req.Title,
		GenreID:              req.GenreID,
		DailyRentalRateCents: req.DailyRentalRateCents,
		NumberInStock:        req.NumberInStock,
	}
	if err := h.svc.CreateMovie(r.Context(), movie); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	movie := &domain.Movie{
		ID:                   id,
		Title:                req.Title,
		GenreID:              req.GenreID,
		DailyRentalRateCents: req.DailyRentalRateCents,
		NumberInStock:        req.NumberInStock,
	}
	if err := h.svc.UpdateMovie(r.Context(), movie); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteMovie(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
