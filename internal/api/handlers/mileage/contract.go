package mileage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/service/mileage/models"
)

// MileageService is the service interface of the handler
type MileageService interface {
	RecordTrip(ctx context.Context, req *models.RecordTripRequest) (*models.TripMileResponse, error)
	CreateMileage(ctx context.Context, req *models.SaveMileageRequest) (*models.MileageResponse, error)
	ListMileages(ctx context.Context, callerID uuid.UUID, callerRole string) (*models.MileageListResponse, error)
	UpdateMileage(ctx context.Context, id int64, req *models.SaveMileageRequest) (*models.MileageResponse, error)
	DeleteMileage(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) error
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
