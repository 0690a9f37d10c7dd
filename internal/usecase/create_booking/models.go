package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// Request is the use case input. Slots carries the raw labels the user
// picked; the use case sorts them into canonical catalog order before
// persisting.
type Request struct {
	UserID      uuid.UUID
	UserEmail   string
	VehicleID   int64
	DriverName  string
	Date        time.Time
	Slots       []string
	Destination string
	Reason      string
}

// Response is the created booking, including the merged display form of
// the slot selection.
type Response struct {
	ID              int64
	UserID          uuid.UUID
	VehicleID       int64
	VehiclePlate    string
	DriverName      string
	Date            time.Time
	TimeSlot        string
	TimeSlotDisplay string
	Destination     string
	Reason          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toResponse(booking *domain.Booking, catalog *domain.SlotCatalog) *Response {
	return &Response{
		ID:              booking.ID,
		UserID:          booking.UserID,
		VehicleID:       booking.VehicleID,
		VehiclePlate:    booking.VehiclePlate,
		DriverName:      booking.DriverName,
		Date:            booking.Date,
		TimeSlot:        booking.TimeSlot,
		TimeSlotDisplay: domain.MergeSlotRanges(catalog, booking.TimeSlot),
		Destination:     booking.Destination,
		Reason:          booking.Reason,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
