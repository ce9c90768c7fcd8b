package postgres

import (
	"context"
	"database/sql"
	"time"

	"vidly-backend/internal/domain"
	"vidly-backend/internal/repository"
)

type stockAdjustmentRepository struct {
	db *sql.DB
}

func NewStockAdjustmentRepository(db *sql.DB) repository.StockAdjustmentRepository {
	return &stockAdjustmentRepository{db: db}
}

func (r *stockAdjustmentRepository) Create(ctx context.Context, adj *domain.StockAdjustment) error {
	query := `INSERT INTO stock_adjustments (movie_id, rental_id, delta, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, adj.MovieID, adj.RentalID, adj.Delta, time.Now()).Scan(&adj.ID)
}

func (r *stockAdjustmentRepository) ListPending(ctx context.Context, limit int32) ([]domain.StockAdjustment, error) {
	query := `SELECT id, movie_id, rental_id, delta, created_on, applied_on FROM stock_adjustments WHERE applied_on IS NULL ORDER BY created_on ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []domain.StockAdjustment
	for rows.Next() {
		var adj domain.StockAdjustment
		if err := rows.Scan(&adj.ID, &adj.MovieID, &adj.RentalID, &adj.Delta, &adj.CreatedOn, &adj.AppliedOn); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

func (r *stockAdjustmentRepository) Apply(ctx context.Context, adjustmentID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Claim the adjustment first; the applied_on guard keeps the whole
	// operation at-most-once even with concurrent sweeps.
	res, err := tx.ExecContext(ctx,
		`UPDATE stock_adjustments SET applied_on = $1 WHERE id = $2 AND applied_on IS NULL`,
		time.Now(), adjustmentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Already applied by another sweep.
		return nil
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE movies SET number_in_stock = GREATEST(number_in_stock + (SELECT delta FROM stock_adjustments WHERE id = $1), 0), updated_on = $2
		 WHERE id = (SELECT movie_id FROM stock_adjustments WHERE id = $1)`,
		adjustmentID, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}
