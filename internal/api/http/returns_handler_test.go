package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "vidly-backend/internal/api/http"
	"vidly-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReturnService struct {
	mock.Mock
}

func (m *MockReturnService) ProcessReturn(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func postReturn(t *testing.T, handler *api.ReturnsHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/returns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)
	return rec
}

func TestReturnsHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		returnedOn := time.Now().UTC()
		fee := int32(1400)
		rental := &domain.Rental{
			ID:             1,
			Customer:       domain.CustomerSnapshot{ID: 10, Name: "Jamie"},
			Movie:          domain.MovieSnapshot{ID: 20, Title: "Heat", DailyRentalRateCents: 200},
			DateOut:        returnedOn.Add(-7 * 24 * time.Hour),
			DateReturned:   &returnedOn,
			RentalFeeCents: &fee,
		}
		svc.On("ProcessReturn", mock.Anything, int32(10), int32(20)).Return(rental, nil)

		rec := postReturn(t, handler, `{"customerId": 10, "movieId": 20}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.Rental
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int32(1), got.ID)
		assert.NotNil(t, got.RentalFeeCents)
		assert.Equal(t, int32(1400), *got.RentalFeeCents)
	})

	t.Run("Missing customerId", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		rec := postReturn(t, handler, `{"movieId": 20}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ProcessReturn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing movieId", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		rec := postReturn(t, handler, `{"customerId": 10}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "ProcessReturn", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No rental for pair", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		svc.On("ProcessReturn", mock.Anything, int32(10), int32(99)).Return(nil, domain.ErrNotFound)

		rec := postReturn(t, handler, `{"customerId": 10, "movieId": 99}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Already returned", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		svc.On("ProcessReturn", mock.Anything, int32(10), int32(20)).Return(nil, domain.ErrAlreadyReturned)

		rec := postReturn(t, handler, `{"customerId": 10, "movieId": 20}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Store unavailable", func(t *testing.T) {
		svc := new(MockReturnService)
		handler := api.NewReturnsHandler(svc)

		svc.On("ProcessReturn", mock.Anything, int32(10), int32(20)).Return(nil, domain.ErrStoreUnavailable)

		rec := postReturn(t, handler, `{"customerId": 10, "movieId": 20}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
