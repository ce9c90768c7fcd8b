package domain

import "time"

// StockAdjustment records a stock increment that could not be applied when a
// return was processed. The reconciliation job sweeps pending adjustments and
// applies them, so a failed increment leaves an auditable row instead of
// silent stock drift.
type StockAdjustment struct {
	ID        int32      `json:"id"`
	MovieID   int32      `json:"movie_id"`
	RentalID  int32      `json:"rental_id"`
	Delta     int32      `json:"delta"`
	CreatedOn time.Time  `json:"created_on"`
	AppliedOn *time.Time `json:"applied_on,omitempty"`
}
