package reports

import (
	"context"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// BookingRepository provides the flattened report rows
type BookingRepository interface {
	ListUsageRows(ctx context.Context, startDate, endDate time.Time) ([]*domain.UsageRow, error)
}

// Logger is the logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
