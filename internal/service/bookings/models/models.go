package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// BookingResponse is one booking as shown on list and detail screens.
// TimeSlotDisplay is the merged human-readable form of the selection.
type BookingResponse struct {
	ID              int64      `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	VehicleID       int64      `json:"vehicle_id"`
	VehiclePlate    string     `json:"vehicle_plate"`
	DriverName      string     `json:"driver_name"`
	Date            string     `json:"date"`
	TimeSlot        string     `json:"time_slot"`
	TimeSlotDisplay string     `json:"time_slot_display"`
	Destination     string     `json:"destination"`
	Reason          string     `json:"reason"`
	MilesRecorded   bool       `json:"miles_recorded"`
	TotalMile       *int       `json:"total_mile,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BookingListResponse is a booking collection with its size.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ListBookingsRequest narrows the admin booking list.
type ListBookingsRequest struct {
	VehicleID *int64
	StartDate *time.Time
	EndDate   *time.Time
}

// FromDomainBooking converts a domain booking, attaching the trip record
// when one exists.
func FromDomainBooking(booking *domain.Booking, catalog *domain.SlotCatalog, trip *domain.TripMile) *BookingResponse {
	resp := &BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		UserEmail:       booking.UserEmail,
		VehicleID:       booking.VehicleID,
		VehiclePlate:    booking.VehiclePlate,
		DriverName:      booking.DriverName,
		Date:            booking.Date.Format(domain.DateFormat),
		TimeSlot:        booking.TimeSlot,
		TimeSlotDisplay: domain.MergeSlotRanges(catalog, booking.TimeSlot),
		Destination:     booking.Destination,
		Reason:          booking.Reason,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}

	if trip != nil {
		resp.MilesRecorded = true
		total := trip.TotalMile
		resp.TotalMile = &total
	}

	return resp
}

// FromDomainBookingList converts a booking slice with its trip records.
func FromDomainBookingList(bookings []*domain.Booking, catalog *domain.SlotCatalog, trips map[int64]*domain.TripMile) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b, catalog, trips[b.ID]))
	}

	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
