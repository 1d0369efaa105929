package reservation

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
)
