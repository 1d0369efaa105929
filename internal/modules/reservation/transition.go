package reservation

import (
	"fmt"

	"carrental/internal/domain"
)

// Decision is the outcome of the status-transition table.
type Decision struct {
	Allowed bool
	Next    domain.ReservationStatus
	Deny    error
}

// DecideTransition is the pure role-scoped state machine for reservation
// status changes.
//
// Admins may move a reservation to any of the three statuses regardless
// of current state or ownership, backward transitions included.
// Customers have exactly one edge: booked -> cancelled on their own
// reservation. Everything else is denied.
func DecideTransition(actorRole domain.UserRole, requested, current domain.ReservationStatus, isOwner bool) Decision {
	if actorRole == domain.RoleAdmin {
		return Decision{Allowed: true, Next: requested}
	}

	if !isOwner {
		return Decision{Deny: fmt.Errorf("%w: you can only update your own reservations", ErrForbidden)}
	}
	if requested != domain.ReservationCancelled {
		return Decision{Deny: fmt.Errorf("%w: customers can only cancel reservations", ErrForbidden)}
	}
	if current != domain.ReservationBooked {
		return Decision{Deny: fmt.Errorf("%w: only booked reservations can be cancelled", ErrConflict)}
	}

	return Decision{Allowed: true, Next: domain.ReservationCancelled}
}
