package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents one vehicle reservation: a vehicle, a date and the
// set of catalog slots taken, plus trip details. The slot set is stored
// comma-joined in canonical catalog order.
type Booking struct {
	ID          int64
	UserID      uuid.UUID
	UserEmail   string
	VehicleID   int64
	DriverName  string
	Date        time.Time
	TimeSlot    string // ", "-joined slot labels
	Destination string
	Reason      string

	// Denormalized for list screens
	VehiclePlate string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slots returns the parsed slot labels of the booking.
func (b *Booking) Slots() []string {
	return ParseSlotList(b.TimeSlot)
}

// Hold converts the booking to the resolver's view of it.
func (b *Booking) Hold() SlotHold {
	return SlotHold{
		BookingID: b.ID,
		HeldBy:    b.DriverName,
		Slots:     b.Slots(),
	}
}

// Holds converts a day's bookings for the resolver.
func Holds(bookings []*Booking) []SlotHold {
	out := make([]SlotHold, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Hold())
	}
	return out
}

// BookingsFilter narrows booking list queries.
type BookingsFilter struct {
	VehicleID *int64
	UserID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TripMile is the odometer record closing one booking's trip.
type TripMile struct {
	ID        int64
	BookingID int64
	StartMile int
	EndMile   int
	TotalMile int
	CreatedAt time.Time
}
