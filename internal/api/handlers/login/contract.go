package login

import (
	"context"

	"github.com/fleetops/FMS-CarBookingService/internal/service/users/models"
)

// UserService is the service interface of the handler
type UserService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
