package get_all_bookings

import (
	"context"

	"github.com/fleetops/FMS-CarBookingService/internal/service/bookings/models"
)

// BookingService is the service interface of the handler
type BookingService interface {
	ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
