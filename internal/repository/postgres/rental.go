package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, customer_name, customer_phone, movie_id, movie_title, daily_rental_rate_cents, date_out, date_returned, rental_fee_cents, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional decrement: claiming a copy fails cleanly when none are
	// left, even under concurrent checkouts.
	res, err := tx.ExecContext(ctx,
		`UPDATE movies SET number_in_stock = number_in_stock - 1, updated_on = $1 WHERE id = $2 AND number_in_stock > 0`,
		time.Now(), rt.Movie.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrOutOfStock
	}

	query := `INSERT INTO rentals (customer_id, customer_name, customer_phone, movie_id, movie_title, daily_rental_rate_cents, date_out, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rt.Customer.ID, rt.Customer.Name, rt.Customer.Phone,
		rt.Movie.ID, rt.Movie.Title, rt.Movie.DailyRentalRateCents,
		rt.DateOut, time.Now(), time.Now()).Scan(&rt.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentalRepository) FindByCustomerAndMovie(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 AND movie_id = $2 ORDER BY date_out DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, customerID, movieID))
}

func (r *rentalRepository) MarkReturned(ctx context.Context, rentalID int32, returnedOn time.Time, feeCents int32) error {
	// The guard on date_returned makes the transition at-most-once: two
	// concurrent returns race on this update and exactly one wins.
	query := `UPDATE rentals SET date_returned = $1, rental_fee_cents = $2, updated_on = $3 WHERE id = $4 AND date_returned IS NULL`
	res, err := r.db.ExecContext(ctx, query, returnedOn, feeCents, time.Now(), rentalID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyReturned
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY date_out DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *rentalRepository) ListOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE date_returned IS NULL AND date_out < $1 ORDER BY date_out ASC`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *rentalRepository) scanOne(row *sql.Row) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(
		&rt.ID, &rt.Customer.ID, &rt.Customer.Name, &rt.Customer.Phone,
		&rt.Movie.ID, &rt.Movie.Title, &rt.Movie.DailyRentalRateCents,
		&rt.DateOut, &rt.DateReturned, &rt.RentalFeeCents,
		&rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) scanMany(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.Customer.ID, &rt.Customer.Name, &rt.Customer.Phone,
			&rt.Movie.ID, &rt.Movie.Title, &rt.Movie.DailyRentalRateCents,
			&rt.DateOut, &rt.DateReturned, &rt.RentalFeeCents,
			&rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
