package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type movieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, m *domain.Movie) error {
	query := `INSERT INTO movies (title, genre_id, daily_rental_rate_cents, number_in_stock, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Title, m.GenreID, m.DailyRentalRateCents, m.NumberInStock, time.Now(), time.Now()).Scan(&m.ID)
}

func (r *movieRepository) GetByID(ctx context.Context, id int32) (*domain.Movie, error) {
	m := &domain.Movie{}
	query := `SELECT id, title, genre_id, daily_rental_rate_cents, number_in_stock, created_on, updated_on FROM movies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.GenreID, &m.DailyRentalRateCents, &m.NumberInStock, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT id, title, genre_id, daily_rental_rate_cents, number_in_stock, created_on, updated_on FROM movies ORDER BY title ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.GenreID, &m.DailyRentalRateCents, &m.NumberInStock, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *movieRepository) Update(ctx context.Context, m *domain.Movie) error {
	query := `UPDATE movies SET title=$1, genre_id=$2, daily_rental_rate_cents=$3, number_in_stock=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, m.Title, m.GenreID, m.DailyRentalRateCents, m.NumberInStock, time.Now(), m.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *movieRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *movieRepository) IncrementStock(ctx context.Context, movieID, by int32) (*domain.Movie, error) {
	// Single atomic update on the counter; the GREATEST guard keeps the
	// stock non-negative if a negative delta ever overshoots.
	m := &domain.Movie{}
	query := `UPDATE movies SET number_in_stock = GREATEST(number_in_stock + $1, 0), updated_on = $2 WHERE id = $3
	          RETURNING id, title, genre_id, daily_rental_rate_cents, number_in_stock, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, by, time.Now(), movieID).Scan(&m.ID, &m.Title, &m.GenreID, &m.DailyRentalRateCents, &m.NumberInStock, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
