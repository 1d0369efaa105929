package domain

import "time"

// MinModelYear is the oldest model year accepted into the fleet.
const MinModelYear = 1990

type Vehicle struct {
	ID          int64     `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Color       string    `json:"color,omitempty"`
	PricePerDay float64   `json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
