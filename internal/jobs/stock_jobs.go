package jobs

import (
	"context"
	"time"

	"vidly-backend/internal/logger"
)

const pendingSweepLimit = 500

// ReconcileStockAdjustments applies stock increments that failed at return
// time. Each adjustment is applied at most once; the sweep and a concurrent
// return can never double-increment a movie's stock.
func (jr *JobRunner) ReconcileStockAdjustments() {
	jr.runWithRecovery("ReconcileStockAdjustments", func() {
		ctx := context.Background()

		pending, err := jr.store.StockAdjustmentRepository.ListPending(ctx, pendingSweepLimit)
		if err != nil {
			logger.Error("Failed to list pending stock adjustments", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Debug("No pending stock adjustments")
			return
		}

		applied, failed := 0, 0
		for _, adj := range pending {
			if err := jr.store.StockAdjustmentRepository.Apply(ctx, adj.ID); err != nil {
				logger.Error("Failed to apply stock adjustment",
					"adjustment_id", adj.ID, "movie_id", adj.MovieID, "error", err)
				failed++
				continue
			}
			applied++
		}

		logger.Info("Stock reconciliation sweep finished", "applied", applied, "failed", failed)

		if jr.email != nil {
			if err := jr.email.SendReconciliationSummary(ctx, applied, failed); err != nil {
				logger.Warn("Failed to send reconciliation summary", "error", err)
			}
		}
	})
}

// ReportStaleRentals logs rentals that have been open longer than the
// configured threshold so operators can chase unreturned movies.
func (jr *JobRunner) ReportStaleRentals() {
	jr.runWithRecovery("ReportStaleRentals", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.StaleAfterDays)
		stale, err := jr.store.RentalRepository.ListOpenSince(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale rentals", "error", err)
			return
		}

		logger.Info("Stale rental report", "count", len(stale), "older_than_days", jr.config.Scheduler.StaleAfterDays)
		for _, rt := range stale {
			logger.Debug("Stale rental",
				"rental_id", rt.ID,
				"customer_id", rt.Customer.ID,
				"movie_id", rt.Movie.ID,
				"date_out", rt.DateOut)
		}
	})
}
