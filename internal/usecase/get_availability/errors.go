package get_availability

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("get_availability: vehicle not found")

	// ErrInvalidDate is returned when the date is missing
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("get_availability: internal error")
)
