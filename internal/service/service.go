package service

import (
	"context"

	"vidly-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type GenreService interface {
	CreateGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetGenre(ctx context.Context, id int32) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	UpdateGenre(ctx context.Context, id int32, name string) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id int32) error
}

type MovieService interface {
	CreateMovie(ctx context.Context, movie *domain.Movie) error
	GetMovie(ctx context.Context, id int32) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	UpdateMovie(ctx context.Context, movie *domain.Movie) error
	DeleteMovie(ctx context.Context, id int32) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
}

type RentalService interface {
	// OpenRental snapshots the customer and movie into a new open rental and
	// takes one copy out of stock.
	OpenRental(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}

type ReturnService interface {
	// ProcessReturn closes the open rental for the (customer, movie) pair,
	// computes the fee, and puts the copy back in stock.
	ProcessReturn(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)
}

type EmailService interface {
	SendStockDriftAlert(ctx context.Context, movieTitle string, movieID, rentalID int32) error
	SendReconciliationSummary(ctx context.Context, applied, failed int) error
}
