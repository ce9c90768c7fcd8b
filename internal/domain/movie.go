package domain

import "time"

type Genre struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
}

type Movie struct {
	ID                   int32     `json:"id"`
	Title                string    `json:"title"`
	GenreID              int32     `json:"genre_id"`
	DailyRentalRateCents int32     `json:"daily_rental_rate_cents"`
	NumberInStock        int32     `json:"number_in_stock"`
	CreatedOn            time.Time `json:"created_on"`
	UpdatedOn            time.Time `json:"updated_on"`
}
