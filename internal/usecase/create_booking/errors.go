package create_booking

import "errors"

var (
	// ErrEmptySlots is returned when no time slot was selected
	ErrEmptySlots = errors.New("create_booking: no time slots selected")

	// ErrInvalidSlots is returned when a selected label is not in the catalog
	ErrInvalidSlots = errors.New("create_booking: unknown time slot label")

	// ErrInvalidDate is returned when the booking date is missing
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateInPast is returned when the booking date is before today
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrEmptyDriverName is returned when the driver name is blank
	ErrEmptyDriverName = errors.New("create_booking: driver name is required")

	// ErrFieldTooLong is returned when a free-text field exceeds its limit
	ErrFieldTooLong = errors.New("create_booking: field exceeds maximum length")

	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleInactive is returned when the vehicle is out of service
	ErrVehicleInactive = errors.New("create_booking: vehicle is not active")

	// ErrSlotConflict is returned by the advisory pre-check when a selected
	// slot is already held by another booking on the same vehicle and date
	ErrSlotConflict = errors.New("create_booking: time slot already booked")

	// ErrSlotTaken is returned when the storage uniqueness constraint
	// rejects the insert. Rare: a concurrent booking won the race between
	// the pre-check and the write.
	ErrSlotTaken = errors.New("create_booking: time slot no longer available")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("create_booking: internal error")
)
