package service

import (
	"context"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	movieRepo    repository.MovieRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	movieRepo repository.MovieRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		movieRepo:    movieRepo,
		customerRepo: customerRepo,
	}
}

func (s *rentalService) OpenRental(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie.NumberInStock <= 0 {
		return nil, domain.ErrOutOfStock
	}

	rental := &domain.Rental{
		Customer: domain.CustomerSnapshot{
			ID:    customer.ID,
			Name:  customer.Name,
			Phone: customer.Phone,
		},
		Movie: domain.MovieSnapshot{
			ID:                   movie.ID,
			Title:                movie.Title,
			DailyRentalRateCents: movie.DailyRentalRateCents,
		},
		DateOut: time.Now().UTC(),
	}

	// Create claims a copy with a conditional decrement, so a concurrent
	// checkout of the last copy fails with ErrOutOfStock instead of
	// overselling.
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}
