package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestParseReservationStatus(t *testing.T) {
	cases := map[string]ReservationStatus{
		"booked":      ReservationBooked,
		"BOOKED":      ReservationBooked,
		"  Cancelled ": ReservationCancelled,
		"COMPLETED":   ReservationCompleted,
	}
	for in, want := range cases {
		got, err := ParseReservationStatus(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseReservationStatus("returned")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseReservationStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, int64(1), InclusiveDays(d(2024, 6, 1), d(2024, 6, 1)))
	assert.Equal(t, int64(3), InclusiveDays(d(2024, 6, 1), d(2024, 6, 3)))
	assert.Equal(t, int64(31), InclusiveDays(d(2024, 6, 1), d(2024, 7, 1)))
}

func TestOverlaps(t *testing.T) {
	// shared boundary day counts as overlap on both ends
	assert.True(t, Overlaps(d(2024, 6, 1), d(2024, 6, 3), d(2024, 6, 3), d(2024, 6, 5)))
	assert.True(t, Overlaps(d(2024, 6, 3), d(2024, 6, 5), d(2024, 6, 1), d(2024, 6, 3)))
	// containment
	assert.True(t, Overlaps(d(2024, 6, 1), d(2024, 6, 10), d(2024, 6, 4), d(2024, 6, 5)))
	// disjoint
	assert.False(t, Overlaps(d(2024, 6, 1), d(2024, 6, 2), d(2024, 6, 3), d(2024, 6, 5)))
}
