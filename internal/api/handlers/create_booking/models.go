package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	createBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request body.
type CreateBookingRequest struct {
	VehicleID   int64    `json:"vehicle_id"`
	DriverName  string   `json:"driver_name"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	Destination string   `json:"destination"`
	Reason      string   `json:"reason"`
}

// CreateBookingResponse is the HTTP response body.
type CreateBookingResponse struct {
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
	CreatedAt       time.Time `json:"created_at"`
}

// ToUseCaseRequest converts the HTTP request, parsing the date and
// attaching the caller identity from the auth middleware.
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID, userEmail string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return &createBooking.Request{
		UserID:      userID,
		UserEmail:   userEmail,
		VehicleID:   r.VehicleID,
		DriverName:  r.DriverName,
		Date:        date,
		Slots:       r.Slots,
		Destination: r.Destination,
		Reason:      r.Reason,
	}, nil
}

// FromUseCaseResponse converts the use case result.
func FromUseCaseResponse(result *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
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
		CreatedAt:       result.CreatedAt,
	}
}
