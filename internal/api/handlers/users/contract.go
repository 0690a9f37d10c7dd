package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/service/users/models"
)

// UserService is the service interface of the handler
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
	List(ctx context.Context) (*models.UserListResponse, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.UserResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
