package postgres

import (
	"database/sql"

	"vidly-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.GenreRepository
	repository.CustomerRepository
	repository.MovieRepository
	repository.RentalRepository
	repository.StockAdjustmentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		GenreRepository:           NewGenreRepository(db),
		CustomerRepository:        NewCustomerRepository(db),
		MovieRepository:           NewMovieRepository(db),
		RentalRepository:          NewRentalRepository(db),
		StockAdjustmentRepository: NewStockAdjustmentRepository(db),
	}
}
