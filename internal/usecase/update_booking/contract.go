package update_booking

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// BookingRepository is the booking storage interface of the use case
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	GetByVehicleAndDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.Booking, error)
}

// VehicleRepository is the vehicle storage interface of the use case
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TransactionManager runs the conflict check and the rewrite atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache invalidates cached availability after a write
type AvailabilityCache interface {
	Invalidate(ctx context.Context, vehicleID int64, date time.Time)
}

// Logger is the logging interface of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
