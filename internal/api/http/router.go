package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles the resource handlers for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Genres    *GenreHandler
	Movies    *MovieHandler
	Customers *CustomerHandler
	Rentals   *RentalHandler
	Returns   *ReturnsHandler
}

// NewRouter wires all routes. Reads are public, mutations require a token,
// and deletes additionally require an admin identity.
func NewRouter(auth *AuthMiddleware, h *Handlers) *mux.Router {
	r := mux.NewRouter()

	protected := func(fn http.HandlerFunc) http.Handler {
		return auth.Authenticate(fn)
	}
	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return auth.Authenticate(auth.RequireAdmin(fn))
	}

	// Users and sessions
	r.HandleFunc("/api/users", h.Auth.Register).Methods("POST")
	r.HandleFunc("/api/auth", h.Auth.Login).Methods("POST")

	// Genres
	r.HandleFunc("/api/genres", h.Genres.List).Methods("GET")
	r.HandleFunc("/api/genres/{id}", h.Genres.Get).Methods("GET")
	r.Handle("/api/genres", protected(h.Genres.Create)).Methods("POST")
	r.Handle("/api/genres/{id}", protected(h.Genres.Update)).Methods("PUT")
	r.Handle("/api/genres/{id}", adminOnly(h.Genres.Delete)).Methods("DELETE")

	// Movies
	r.HandleFunc("/api/movies", h.Movies.List).Methods("GET")
	r.HandleFunc("/api/movies/{id}", h.Movies.Get).Methods("GET")
	r.Handle("/api/movies", protected(h.Movies.Create)).Methods("POST")
	r.Handle("/api/movies/{id}", protected(h.Movies.Update)).Methods("PUT")
	r.Handle("/api/movies/{id}", adminOnly(h.Movies.Delete)).Methods("DELETE")

	// Customers
	r.HandleFunc("/api/customers", h.Customers.List).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.Customers.Get).Methods("GET")
	r.Handle("/api/customers", protected(h.Customers.Create)).Methods("POST")
	r.Handle("/api/customers/{id}", protected(h.Customers.Update)).Methods("PUT")
	r.Handle("/api/customers/{id}", adminOnly(h.Customers.Delete)).Methods("DELETE")

	// Rentals
	r.HandleFunc("/api/rentals", h.Rentals.List).Methods("GET")
	r.HandleFunc("/api/rentals/{id}", h.Rentals.Get).Methods("GET")
	r.Handle("/api/rentals", protected(h.Rentals.Create)).Methods("POST")

	// Returns
	r.Handle("/api/returns", protected(h.Returns.Create)).Methods("POST")

	return r
}
