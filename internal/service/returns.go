package service

import (
	"context"
	"fmt"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/logger"
	"vidly-backend/internal/repository"
)

type returnService struct {
	rentalRepo repository.RentalRepository
	movieRepo  repository.MovieRepository
	adjRepo    repository.StockAdjustmentRepository
	emailSvc   EmailService
}

func NewReturnService(
	rentalRepo repository.RentalRepository,
	movieRepo repository.MovieRepository,
	adjRepo repository.StockAdjustmentRepository,
	emailSvc EmailService,
) ReturnService {
	return &returnService{
		rentalRepo: rentalRepo,
		movieRepo:  movieRepo,
		adjRepo:    adjRepo,
		emailSvc:   emailSvc,
	}
}

func (s *returnService) ProcessReturn(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindByCustomerAndMovie(ctx, customerID, movieID)
	if err != nil {
		return nil, err
	}

	// Fast path for the common duplicate submission; the conditional update
	// below still decides the concurrent case.
	if rental.Returned() {
		return nil, domain.ErrAlreadyReturned
	}

	now := time.Now().UTC()
	fee := rental.FeeCentsAt(now)

	if err := s.rentalRepo.MarkReturned(ctx, rental.ID, now, fee); err != nil {
		return nil, err
	}
	rental.DateReturned = &now
	rental.RentalFeeCents = &fee

	if _, err := s.movieRepo.IncrementStock(ctx, rental.Movie.ID, 1); err != nil {
		// The return has committed; the stock counter has not caught up.
		// Record the drift so the reconciliation sweep can repair it, and
		// surface the failure instead of pretending the return fully landed.
		logger.Error("stock increment failed after return committed",
			"rental_id", rental.ID, "movie_id", rental.Movie.ID, "error", err)

		adj := &domain.StockAdjustment{MovieID: rental.Movie.ID, RentalID: rental.ID, Delta: 1}
		if aerr := s.adjRepo.Create(ctx, adj); aerr != nil {
			logger.Error("failed to record stock adjustment",
				"rental_id", rental.ID, "movie_id", rental.Movie.ID, "error", aerr)
		} else if s.emailSvc != nil {
			if merr := s.emailSvc.SendStockDriftAlert(ctx, rental.Movie.Title, rental.Movie.ID, rental.ID); merr != nil {
				logger.Warn("failed to send stock drift alert", "error", merr)
			}
		}

		return nil, fmt.Errorf("%w: stock increment for movie %d: %v", domain.ErrStoreUnavailable, rental.Movie.ID, err)
	}

	return rental, nil
}
