package bookings

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// BookingRepository is the booking storage interface of the service
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// MileageRepository provides the trip records shown on booking lists
type MileageRepository interface {
	GetTripMilesByBookingIDs(ctx context.Context, bookingIDs []int64) (map[int64]*domain.TripMile, error)
}

// AvailabilityCache invalidates cached availability after a delete
type AvailabilityCache interface {
	Invalidate(ctx context.Context, vehicleID int64, date time.Time)
}

// Logger is the logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
