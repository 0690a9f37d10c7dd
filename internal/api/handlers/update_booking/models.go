package update_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	updateBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest is the HTTP request body.
type UpdateBookingRequest struct {
	VehicleID   int64    `json:"vehicle_id"`
	DriverName  string   `json:"driver_name"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	Destination string   `json:"destination"`
	Reason      string   `json:"reason"`
}

// UpdateBookingResponse is the HTTP response body.
type UpdateBookingResponse struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	VehicleID       int64     `json:"vehicle_id"`
	VehiclePlate    string    `json:"vehicle_plate"`
	DriverName      string    `json:"driver_name"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	TimeSlotDisplay string    `json:"time_slot_display"`
	Destination     string    `json:"destination"`
	Reason          string    `json:"reason"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToUseCaseRequest converts the HTTP request.
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64, callerID uuid.UUID, callerRole string) (*updateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return &updateBooking.Request{
		BookingID:   bookingID,
		CallerID:    callerID,
		CallerRole:  callerRole,
		VehicleID:   r.VehicleID,
		DriverName:  r.DriverName,
		Date:        date,
		Slots:       r.Slots,
		Destination: r.Destination,
		Reason:      r.Reason,
	}, nil
}

// FromUseCaseResponse converts the use case result.
func FromUseCaseResponse(result *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		ID:              result.ID,
		UserID:          result.UserID,
		VehicleID:       result.VehicleID,
		VehiclePlate:    result.VehiclePlate,
		DriverName:      result.DriverName,
		Date:            result.Date.Format(domain.DateFormat),
		TimeSlot:        result.TimeSlot,
		TimeSlotDisplay: result.TimeSlotDisplay,
		Destination:     result.Destination,
		Reason:          result.Reason,
		UpdatedAt:       result.UpdatedAt,
	}
}
