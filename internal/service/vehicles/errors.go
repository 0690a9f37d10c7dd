package vehicles

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicles.service: vehicle not found")

	// ErrPlateTaken is returned when another vehicle already carries the plate
	ErrPlateTaken = errors.New("vehicles.service: plate already registered")

	// ErrInvalidInput is returned on malformed vehicle data
	ErrInvalidInput = errors.New("vehicles.service: invalid input")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("vehicles.service: internal error")
)
