package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// TripMileResponse is the odometer record of one booking.
type TripMileResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	StartMile int       `json:"start_mile"`
	EndMile   int       `json:"end_mile"`
	TotalMile int       `json:"total_mile"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordTripRequest carries the trip odometer form.
type RecordTripRequest struct {
	BookingID  int64
	CallerID   uuid.UUID
	CallerRole string
	StartMile  int
	EndMile    int
}

// MileageResponse is one personal mileage record.
type MileageResponse struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	EmployeeName string    `json:"employee_name"`
	Date         string    `json:"date"`
	Location     string    `json:"location"`
	StartMile    int       `json:"start_mile"`
	EndMile      int       `json:"end_mile"`
	TotalMile    int       `json:"total_mile"`
	Remark       string    `json:"remark"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MileageListResponse is a personal mileage collection.
type MileageListResponse struct {
	Records []*MileageResponse `json:"records"`
	Total   int                `json:"total"`
}

// SaveMileageRequest carries the personal mileage form.
type SaveMileageRequest struct {
	CallerID     uuid.UUID
	CallerRole   string
	EmployeeName string
	Date         time.Time
	Location     string
	StartMile    int
	EndMile      int
	Remark       string
}

// FromDomainTripMile converts a trip record.
func FromDomainTripMile(t *domain.TripMile) *TripMileResponse {
	return &TripMileResponse{
		ID:        t.ID,
		BookingID: t.BookingID,
		StartMile: t.StartMile,
		EndMile:   t.EndMile,
		TotalMile: t.TotalMile,
		CreatedAt: t.CreatedAt,
	}
}

// FromDomainMileage converts a personal mileage record.
func FromDomainMileage(m *domain.Mileage) *MileageResponse {
	return &MileageResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		EmployeeName: m.EmployeeName,
		Date:         m.Date.Format(domain.DateFormat),
		Location:     m.Location,
		StartMile:    m.StartMile,
		EndMile:      m.EndMile,
		TotalMile:    m.TotalMile(),
		Remark:       m.Remark,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomainMileageList converts a record slice.
func FromDomainMileageList(records []*domain.Mileage) *MileageListResponse {
	out := make([]*MileageResponse, 0, len(records))
	for _, m := range records {
		out = append(out, FromDomainMileage(m))
	}
	return &MileageListResponse{Records: out, Total: len(out)}
}
