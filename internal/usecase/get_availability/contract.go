package get_availability

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// BookingRepository is the booking storage interface of the use case
type BookingRepository interface {
	GetByVehicleAndDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.Booking, error)
}

// VehicleRepository is the vehicle storage interface of the use case
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// AvailabilityCache is the read-through cache of rendered day views
type AvailabilityCache interface {
	Get(ctx context.Context, vehicleID int64, date time.Time) (domain.AvailabilityMap, bool)
	Set(ctx context.Context, vehicleID int64, date time.Time, avail domain.AvailabilityMap)
}

// Logger is the logging interface of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
