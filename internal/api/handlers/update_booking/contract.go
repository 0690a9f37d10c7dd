package update_booking

import (
	"context"

	updateBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/update_booking"
)

// UpdateBookingUseCase is the use case interface of the handler
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
