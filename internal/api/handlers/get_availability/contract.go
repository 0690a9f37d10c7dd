package get_availability

import (
	"context"

	getAvailability "github.com/fleetops/FMS-CarBookingService/internal/usecase/get_availability"
)

// GetAvailabilityUseCase is the use case interface of the handler
type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
