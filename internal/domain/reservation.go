package domain

import (
	"errors"
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationBooked    ReservationStatus = "booked"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// BlockingStatuses are the statuses that count toward availability
// conflicts. Cancelled and completed reservations never block a vehicle.
var BlockingStatuses = []ReservationStatus{ReservationBooked}

var ErrUnknownStatus = errors.New("unknown reservation status")

// ParseReservationStatus accepts status names case-insensitively with
// surrounding whitespace ignored.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ReservationBooked:
		return ReservationBooked, nil
	case ReservationCancelled:
		return ReservationCancelled, nil
	case ReservationCompleted:
		return ReservationCompleted, nil
	}
	return "", ErrUnknownStatus
}

type Reservation struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"user_id"`
	VehicleID        int64             `json:"vehicle_id"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	TotalPrice       float64           `json:"total_price"`
	Status           ReservationStatus `json:"status"`
	ConfirmationCode string            `json:"confirmation_code"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// InclusiveDays returns the number of rental days for an inclusive
// [start, end] date range: start == end counts as one day.
func InclusiveDays(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether two inclusive date ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DateOnly truncates t to midnight UTC. Reservation dates are stored and
// compared at day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
