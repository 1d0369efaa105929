package reservation

import (
	"testing"

	"carrental/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDecideTransition(t *testing.T) {
	booked := domain.ReservationBooked
	cancelled := domain.ReservationCancelled
	completed := domain.ReservationCompleted

	tests := []struct {
		name      string
		role      domain.UserRole
		requested domain.ReservationStatus
		current   domain.ReservationStatus
		isOwner   bool
		allowed   bool
		next      domain.ReservationStatus
		deny      error
	}{
		{"admin may complete", domain.RoleAdmin, completed, booked, false, true, completed, nil},
		{"admin may cancel", domain.RoleAdmin, cancelled, booked, false, true, cancelled, nil},
		{"admin may re-book a cancelled reservation", domain.RoleAdmin, booked, cancelled, false, true, booked, nil},
		{"admin may move completed back to booked", domain.RoleAdmin, booked, completed, true, true, booked, nil},

		{"customer cancels own booked", domain.RoleCustomer, cancelled, booked, true, true, cancelled, nil},
		{"customer cannot touch others", domain.RoleCustomer, cancelled, booked, false, false, "", ErrForbidden},
		{"customer cannot complete", domain.RoleCustomer, completed, booked, true, false, "", ErrForbidden},
		{"customer cannot re-book", domain.RoleCustomer, booked, cancelled, true, false, "", ErrForbidden},
		{"customer cannot cancel cancelled", domain.RoleCustomer, cancelled, cancelled, true, false, "", ErrConflict},
		{"customer cannot cancel completed", domain.RoleCustomer, cancelled, completed, true, false, "", ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecideTransition(tt.role, tt.requested, tt.current, tt.isOwner)
			assert.Equal(t, tt.allowed, d.Allowed)
			if tt.allowed {
				assert.Equal(t, tt.next, d.Next)
				assert.NoError(t, d.Deny)
			} else {
				assert.ErrorIs(t, d.Deny, tt.deny)
			}
		})
	}
}
