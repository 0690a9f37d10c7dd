package mileage

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("mileage.service: booking not found")

	// ErrRecordNotFound is returned when the mileage record does not exist
	ErrRecordNotFound = errors.New("mileage.service: record not found")

	// ErrAccessDenied is returned when the caller does not own the record
	ErrAccessDenied = errors.New("mileage.service: access denied")

	// ErrInvalidMiles is returned when the end mile is not after the start
	ErrInvalidMiles = errors.New("mileage.service: end mile must be greater than start mile")

	// ErrInvalidInput is returned on malformed record data
	ErrInvalidInput = errors.New("mileage.service: invalid input")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("mileage.service: internal error")
)
