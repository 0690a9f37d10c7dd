package create_booking

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	"github.com/fleetops/FMS-CarBookingService/internal/integrations/linenotify"
)

// BookingRepository is the booking storage interface of the use case
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByVehicleAndDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.Booking, error)
}

// VehicleRepository is the vehicle storage interface of the use case
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TransactionManager runs the conflict check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier broadcasts the booking announcement after commit
type Notifier interface {
	Enabled() bool
	BroadcastBooking(ctx context.Context, notice linenotify.BookingNotice) error
}

// AvailabilityCache invalidates cached availability after a write
type AvailabilityCache interface {
	Invalidate(ctx context.Context, vehicleID int64, date time.Time)
}

// TimeProvider returns the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
