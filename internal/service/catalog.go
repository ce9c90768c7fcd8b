package service

import (
	"context"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	genre := &domain.Genre{Name: name}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) GetGenre(ctx context.Context, id int32) (*domain.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *genreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.List(ctx)
}

func (s *genreService) UpdateGenre(ctx context.Context, id int32, name string) (*domain.Genre, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genre.Name = name
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id int32) error {
	return s.genreRepo.Delete(ctx, id)
}

type movieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
}

func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository) MovieService {
	return &movieService{movieRepo: movieRepo, genreRepo: genreRepo}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	// Reject dangling genre references up front.
	if _, err := s.genreRepo.GetByID(ctx, movie.GenreID); err != nil {
		return err
	}
	return s.movieRepo.Create(ctx, movie)
}

func (s *movieService) GetMovie(ctx context.Context, id int32) (*domain.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *movieService) UpdateMovie(ctx context.Context, movie *domain.Movie) error {
	if _, err := s.genreRepo.GetByID(ctx, movie.GenreID); err != nil {
		return err
	}
	return s.movieRepo.Update(ctx, movie)
}

func (s *movieService) DeleteMovie(ctx context.Context, id int32) error {
	return s.movieRepo.Delete(ctx, id)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	return s.customerRepo.Delete(ctx, id)
}
