package fleet

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrVehicleNotFound = errors.New("vehicle not found")
)
