package repository

import (
	"context"
	"time"

	"vidly-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	GetByID(ctx context.Context, id int32) (*domain.Genre, error)
	List(ctx context.Context) ([]domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id int32) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int32) error

	// IncrementStock atomically adds `by` to the movie's stock counter and
	// returns the updated movie. The counter never goes below zero.
	IncrementStock(ctx context.Context, movieID, by int32) (*domain.Movie, error)
}

type RentalRepository interface {
	// Create inserts the rental and decrements the movie's stock in a single
	// transaction. Returns domain.ErrOutOfStock when no copies are left.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)

	// FindByCustomerAndMovie returns the most recent rental for the pair,
	// open or not; the return transition re-checks openness itself.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID int32) (*domain.Rental, error)

	// MarkReturned applies the return transition as a conditional update:
	// the write succeeds only while date_returned is still null. Returns
	// domain.ErrAlreadyReturned when the rental was already closed.
	MarkReturned(ctx context.Context, rentalID int32, returnedOn time.Time, feeCents int32) error

	// ListOpenSince lists rentals still open whose date_out is older than
	// the cutoff, for the stale-rental report job.
	ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type StockAdjustmentRepository interface {
	Create(ctx context.Context, adj *domain.StockAdjustment) error
	ListPending(ctx context.Context, limit int32) ([]domain.StockAdjustment, error)

	// Apply marks the adjustment applied and increments the movie's stock in
	// one transaction. Applying an already-applied adjustment is a no-op, so
	// concurrent sweeps never double-increment.
	Apply(ctx context.Context, adjustmentID int32) error
}
