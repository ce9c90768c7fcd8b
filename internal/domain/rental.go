package domain

import "time"

// CustomerSnapshot and MovieSnapshot are copies of the customer/movie fields
// captured when the rental is opened. All fee calculations use these
// snapshots, not the live catalog records, so later edits to a customer or
// movie never change historical rentals.
type CustomerSnapshot struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type MovieSnapshot struct {
	ID                   int32  `json:"id"`
	Title                string `json:"title"`
	DailyRentalRateCents int32  `json:"daily_rental_rate_cents"`
}

type Rental struct {
	ID             int32            `json:"id"`
	Customer       CustomerSnapshot `json:"customer"`
	Movie          MovieSnapshot    `json:"movie"`
	DateOut        time.Time        `json:"date_out"`
	DateReturned   *time.Time       `json:"date_returned,omitempty"`
	RentalFeeCents *int32           `json:"rental_fee_cents,omitempty"`
	CreatedOn      time.Time        `json:"created_on"`
	UpdatedOn      time.Time        `json:"updated_on"`
}

// Returned reports whether the rental has reached its terminal state.
func (r *Rental) Returned() bool {
	return r.DateReturned != nil
}

// DaysCharged converts the elapsed rental duration into billable days:
// whole days elapsed, with a floor of one so a same-day return still incurs
// one day's fee.
func DaysCharged(dateOut, returnedOn time.Time) int32 {
	days := int32(returnedOn.Sub(dateOut).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// FeeCentsAt computes the rental fee for a return at the given time, using
// the daily rate snapshotted when the rental was opened.
func (r *Rental) FeeCentsAt(returnedOn time.Time) int32 {
	return DaysCharged(r.DateOut, returnedOn) * r.Movie.DailyRentalRateCents
}
