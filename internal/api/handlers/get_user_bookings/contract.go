package get_user_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/service/bookings/models"
)

// BookingService is the service interface of the handler
type BookingService interface {
	ListMine(ctx context.Context, callerID uuid.UUID) (*models.BookingListResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
