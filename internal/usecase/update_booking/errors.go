package update_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied is returned when the caller neither owns the booking
	// nor has the admin role
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrEmptySlots is returned when no time slot was selected
	ErrEmptySlots = errors.New("update_booking: no time slots selected")

	// ErrInvalidSlots is returned when a selected label is not in the catalog
	ErrInvalidSlots = errors.New("update_booking: unknown time slot label")

	// ErrInvalidDate is returned when the booking date is missing
	ErrInvalidDate = errors.New("update_booking: invalid booking date")

	// ErrEmptyDriverName is returned when the driver name is blank
	ErrEmptyDriverName = errors.New("update_booking: driver name is required")

	// ErrFieldTooLong is returned when a free-text field exceeds its limit
	ErrFieldTooLong = errors.New("update_booking: field exceeds maximum length")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("update_booking: vehicle not found")

	// ErrVehicleInactive is returned when the vehicle is out of service
	ErrVehicleInactive = errors.New("update_booking: vehicle is not active")

	// ErrSlotConflict is returned by the advisory pre-check. The booking's
	// own slots are excluded, so unchanged selections never conflict with
	// themselves.
	ErrSlotConflict = errors.New("update_booking: time slot already booked")

	// ErrSlotTaken is returned when the storage uniqueness constraint
	// rejects the rewrite
	ErrSlotTaken = errors.New("update_booking: time slot no longer available")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("update_booking: internal error")
)
