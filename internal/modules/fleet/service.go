package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrental/internal/domain"

	"gorm.io/gorm"
)

// Service implements the vehicle inventory and the availability engine.
type Service struct {
	vehicles     VehicleRepository
	reservations ReservationReader
	authorizer   Authorizer
}

func NewService(vehicles VehicleRepository, reservations ReservationReader, authorizer Authorizer) *Service {
	return &Service{
		vehicles:     vehicles,
		reservations: reservations,
		authorizer:   authorizer,
	}
}

// ListVehicles returns the fleet, optionally filtered to vehicles free
// over the inclusive [start, end] range. Passing neither date returns
// everything; passing exactly one is a validation error. Only booked
// reservations block a vehicle.
func (s *Service) ListVehicles(ctx context.Context, start, end *time.Time) ([]domain.Vehicle, error) {
	if start == nil && end == nil {
		return s.vehicles.GetAll(ctx)
	}
	if start == nil || end == nil {
		return nil, fmt.Errorf("%w: both start_date and end_date are required to filter availability", ErrValidation)
	}
	if end.Before(*start) {
		return nil, fmt.Errorf("%w: end_date must be on or after start_date", ErrValidation)
	}

	ids, err := s.reservations.FindBlockedVehicleIDs(ctx, *start, *end, domain.BlockingStatuses)
	if err != nil {
		return nil, err
	}

	all, err := s.vehicles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return all, nil
	}

	blocked := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		blocked[id] = struct{}{}
	}

	out := make([]domain.Vehicle, 0, len(all))
	for _, v := range all {
		if _, ok := blocked[v.ID]; !ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) AddVehicle(ctx context.Context, adminUserID int64, payload VehiclePayload) (*domain.Vehicle, error) {
	if _, err := s.authorizer.RequireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}

	v, err := vehicleFromPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, adminUserID, id int64, payload VehiclePayload) (*domain.Vehicle, error) {
	if _, err := s.authorizer.RequireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}

	clean, err := vehicleFromPayload(payload)
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	existing.Make = clean.Make
	existing.Model = clean.Model
	existing.Year = clean.Year
	existing.Color = clean.Color
	existing.PricePerDay = clean.PricePerDay

	if err := s.vehicles.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteVehicle removes a vehicle from the fleet. Reservations reference
// vehicles weakly by id, so existing reservations are left untouched.
func (s *Service) DeleteVehicle(ctx context.Context, adminUserID, id int64) error {
	if _, err := s.authorizer.RequireAdmin(ctx, adminUserID); err != nil {
		return err
	}

	exists, err := s.vehicles.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVehicleNotFound
	}

	return s.vehicles.DeleteByID(ctx, id)
}

func vehicleFromPayload(p VehiclePayload) (*domain.Vehicle, error) {
	mk := strings.TrimSpace(p.Make)
	model := strings.TrimSpace(p.Model)

	if mk == "" {
		return nil, fmt.Errorf("%w: vehicle make is required", ErrValidation)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: vehicle model is required", ErrValidation)
	}
	if p.Year < domain.MinModelYear || p.Year > time.Now().Year()+1 {
		return nil, fmt.Errorf("%w: vehicle year is invalid", ErrValidation)
	}
	if p.PricePerDay <= 0 {
		return nil, fmt.Errorf("%w: price_per_day must be greater than 0", ErrValidation)
	}

	return &domain.Vehicle{
		Make:        mk,
		Model:       model,
		Year:        p.Year,
		Color:       strings.TrimSpace(p.Color),
		PricePerDay: p.PricePerDay,
	}, nil
}
