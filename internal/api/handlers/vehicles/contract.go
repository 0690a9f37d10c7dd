package vehicles

import (
	"context"

	"github.com/fleetops/FMS-CarBookingService/internal/service/vehicles/models"
)

// VehicleService is the service interface of the handler
type VehicleService interface {
	List(ctx context.Context, activeOnly bool) (*models.VehicleListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error)
	Create(ctx context.Context, req *models.SaveVehicleRequest) (*models.VehicleResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveVehicleRequest) (*models.VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
	SetMaintenance(ctx context.Context, req *models.SetMaintenanceRequest) error
	ListMaintenance(ctx context.Context) (*models.MaintenanceListResponse, error)
}

// Logger is the logging interface of the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
