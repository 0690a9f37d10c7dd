package mileage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// MileageRepository is the mileage storage interface of the service
type MileageRepository interface {
	UpsertTripMile(ctx context.Context, trip *domain.TripMile) (*domain.TripMile, error)
	CreateMileage(ctx context.Context, record *domain.Mileage) (*domain.Mileage, error)
	GetMileageByID(ctx context.Context, id int64) (*domain.Mileage, error)
	ListMileages(ctx context.Context, userID *uuid.UUID) ([]*domain.Mileage, error)
	UpdateMileage(ctx context.Context, record *domain.Mileage) error
	DeleteMileage(ctx context.Context, id int64) error
}

// BookingRepository resolves the booking a trip record belongs to
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// MaintenanceRepository receives the vehicle's latest odometer value
type MaintenanceRepository interface {
	UpsertCurrentMileage(ctx context.Context, vehicleID int64, currentMileage int) error
}

// Logger is the logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
