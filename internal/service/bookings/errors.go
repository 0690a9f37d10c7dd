package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied is returned when the caller neither owns the booking
	// nor has the admin role
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInvalidInput is returned on malformed filter values
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("bookings.service: internal error")
)
