package reservation

import (
	"context"
	"time"

	"carrental/internal/domain"
)

// ReservationRepository is the persistence surface for reservations,
// including the specialized overlap queries.
type ReservationRepository interface {
	Create(ctx context.Context, b *domain.Reservation) error
	Save(ctx context.Context, b *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]domain.Reservation, error)
	GetByUserOrderByStartDateDesc(ctx context.Context, userID int64) ([]domain.Reservation, error)
	ExistsOverlapping(ctx context.Context, vehicleID int64, statuses []domain.ReservationStatus, start, end time.Time) (bool, error)
}

// VehicleReader resolves the vehicle being reserved.
type VehicleReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Authorizer re-validates the acting user on every call; authorization
// decisions are never cached.
type Authorizer interface {
	ResolveUser(ctx context.Context, id int64) (*domain.User, error)
	RequireAdmin(ctx context.Context, id int64) (*domain.User, error)
}
