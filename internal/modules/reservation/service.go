package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrental/internal/domain"
	"carrental/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service implements reservation creation and role-scoped status
// transitions. The overlap invariant: no two booked reservations for the
// same vehicle may cover intersecting inclusive date ranges.
type Service struct {
	reservations ReservationRepository
	vehicles     VehicleReader
	authorizer   Authorizer
}

func NewService(reservations ReservationRepository, vehicles VehicleReader, authorizer Authorizer) *Service {
	return &Service{
		reservations: reservations,
		vehicles:     vehicles,
		authorizer:   authorizer,
	}
}

// Create validates and persists a new booked reservation.
//
// The overlap check and the insert are not wrapped in a transaction; on
// PostgreSQL the exclusion constraint closes the race and the repository
// reports it as ErrOverlapConstraint, which also maps to ErrConflict.
func (s *Service) Create(ctx context.Context, userID, vehicleID int64, startDate, endDate time.Time) (*domain.Reservation, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if vehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicle_id is required", ErrValidation)
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", ErrValidation)
	}

	start := domain.DateOnly(startDate)
	end := domain.DateOnly(endDate)
	today := domain.DateOnly(time.Now())

	if start.Before(today) {
		return nil, fmt.Errorf("%w: start_date cannot be in the past", ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must be on or after start_date", ErrValidation)
	}

	if _, err := s.authorizer.ResolveUser(ctx, userID); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	overlapping, err := s.reservations.ExistsOverlapping(ctx, vehicleID, domain.BlockingStatuses, start, end)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, fmt.Errorf("%w: vehicle already booked for selected dates", ErrConflict)
	}

	totalDays := domain.InclusiveDays(start, end)
	totalPrice := float64(totalDays) * vehicle.PricePerDay

	b := &domain.Reservation{
		UserID:           userID,
		VehicleID:        vehicleID,
		StartDate:        start,
		EndDate:          end,
		TotalPrice:       totalPrice,
		Status:           domain.ReservationBooked,
		ConfirmationCode: uuid.NewString(),
	}

	if err := s.reservations.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlapConstraint) {
			return nil, fmt.Errorf("%w: vehicle already booked for selected dates", ErrConflict)
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus applies a role-scoped status transition on behalf of an
// explicit actor.
func (s *Service) UpdateStatus(ctx context.Context, reservationID, actorUserID int64, statusName string) (*domain.Reservation, error) {
	if actorUserID <= 0 {
		return nil, fmt.Errorf("%w: actor_user_id is required", ErrValidation)
	}

	next, err := domain.ParseReservationStatus(statusName)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status, allowed: booked, cancelled, completed", ErrValidation)
	}

	b, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	actor, err := s.authorizer.ResolveUser(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	decision := DecideTransition(actor.Role, next, b.Status, actor.ID == b.UserID)
	if !decision.Allowed {
		return nil, decision.Deny
	}

	b.Status = decision.Next
	if err := s.reservations.Save(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlapConstraint) {
			return nil, fmt.Errorf("%w: vehicle already booked for selected dates", ErrConflict)
		}
		return nil, err
	}
	return b, nil
}

// ListForUser returns the user's reservations, newest start date first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	if _, err := s.authorizer.ResolveUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.reservations.GetByUserOrderByStartDateDesc(ctx, userID)
}

// ListAll returns every reservation; admin only.
func (s *Service) ListAll(ctx context.Context, adminUserID int64) ([]domain.Reservation, error) {
	if _, err := s.authorizer.RequireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}
	return s.reservations.GetAll(ctx)
}
