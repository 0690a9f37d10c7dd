package create_booking

import (
	"context"

	createBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/create_booking"
)

// CreateBookingUseCase is the use case interface of the handler
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
