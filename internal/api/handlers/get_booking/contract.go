package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/service/bookings/models"
)

// BookingService is the service interface of the handler
type BookingService interface {
	GetByID(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) (*models.BookingResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
