package fleet

import (
	"context"
	"time"

	"carrental/internal/domain"
)

// VehicleRepository is the persistence surface for the fleet inventory.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	Update(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetAll(ctx context.Context) ([]domain.Vehicle, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ReservationReader exposes the blocked-vehicle query the availability
// engine needs.
type ReservationReader interface {
	FindBlockedVehicleIDs(ctx context.Context, start, end time.Time, statuses []domain.ReservationStatus) ([]int64, error)
}

// Authorizer re-validates the acting user on every privileged call.
type Authorizer interface {
	RequireAdmin(ctx context.Context, id int64) (*domain.User, error)
}
