package delete_booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingService is the service interface of the handler
type BookingService interface {
	Delete(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) error
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
