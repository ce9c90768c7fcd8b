package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openRental(dateOut time.Time, rateCents int32) *domain.Rental {
	return &domain.Rental{
		ID: 1,
		Customer: domain.CustomerSnapshot{
			ID:    10,
			Name:  "Jamie",
			Phone: "555-0100",
		},
		Movie: domain.MovieSnapshot{
			ID:                   20,
			Title:                "Heat",
			DailyRentalRateCents: rateCents,
		},
		DateOut: dateOut,
	}
}

func TestReturnService_ProcessReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, nil)

		rental := openRental(time.Now().UTC().Add(-7*24*time.Hour), 200)

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(20)).Return(rental, nil)
		// 7 whole days at 200 cents/day
		rentalRepo.On("MarkReturned", ctx, int32(1), mock.AnythingOfType("time.Time"), int32(1400)).Return(nil)
		movieRepo.On("IncrementStock", ctx, int32(20), int32(1)).Return(&domain.Movie{ID: 20, NumberInStock: 11}, nil)

		res, err := svc.ProcessReturn(ctx, 10, 20)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotNil(t, res.DateReturned)
		assert.WithinDuration(t, time.Now().UTC(), *res.DateReturned, 5*time.Second)
		assert.NotNil(t, res.RentalFeeCents)
		assert.Equal(t, int32(1400), *res.RentalFeeCents)
		movieRepo.AssertNumberOfCalls(t, "IncrementStock", 1)
	})

	t.Run("Same-day return charges one day", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, nil)

		rental := openRental(time.Now().UTC().Add(-2*time.Hour), 200)

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(20)).Return(rental, nil)
		rentalRepo.On("MarkReturned", ctx, int32(1), mock.AnythingOfType("time.Time"), int32(200)).Return(nil)
		movieRepo.On("IncrementStock", ctx, int32(20), int32(1)).Return(&domain.Movie{ID: 20}, nil)

		res, err := svc.ProcessReturn(ctx, 10, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(200), *res.RentalFeeCents)
	})

	t.Run("No rental for pair", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, nil)

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(99)).Return(nil, domain.ErrNotFound)

		res, err := svc.ProcessReturn(ctx, 10, 99)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Already returned", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, nil)

		rental := openRental(time.Now().UTC().Add(-48*time.Hour), 200)
		returnedOn := time.Now().UTC().Add(-time.Hour)
		rental.DateReturned = &returnedOn

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(20)).Return(rental, nil)

		res, err := svc.ProcessReturn(ctx, 10, 20)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrAlreadyReturned)
		rentalRepo.AssertNotCalled(t, "MarkReturned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lost the conditional-update race", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, nil)

		rental := openRental(time.Now().UTC().Add(-24*time.Hour), 200)

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(20)).Return(rental, nil)
		rentalRepo.On("MarkReturned", ctx, int32(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("int32")).Return(domain.ErrAlreadyReturned)

		res, err := svc.ProcessReturn(ctx, 10, 20)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrAlreadyReturned)
		movieRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stock increment fails after return committed", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		movieRepo := new(MockMovieRepo)
		adjRepo := new(MockStockAdjustmentRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewReturnService(rentalRepo, movieRepo, adjRepo, emailSvc)

		rental := openRental(time.Now().UTC().Add(-24*time.Hour), 200)

		rentalRepo.On("FindByCustomerAndMovie", ctx, int32(10), int32(20)).Return(rental, nil)
		rentalRepo.On("MarkReturned", ctx, int32(1), mock.AnythingOfType("time.Time"), int32(200)).Return(nil)
		movieRepo.On("IncrementStock", ctx, int32(20), int32(1)).Return(nil, errors.New("connection refused"))
		adjRepo.On("Create", ctx, mock.AnythingOfType("*domain.StockAdjustment")).Return(nil)
		emailSvc.On("SendStockDriftAlert", ctx, "Heat", int32(20), int32(1)).Return(nil)

		res, err := svc.ProcessReturn(ctx, 10, 20)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		// The drift must be recorded for the reconciliation sweep.
		adjRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(adj *domain.StockAdjustment) bool {
			return adj.MovieID == 20 && adj.RentalID == 1 && adj.Delta == 1
		}))
		emailSvc.AssertNumberOfCalls(t, "SendStockDriftAlert", 1)
	})
}
