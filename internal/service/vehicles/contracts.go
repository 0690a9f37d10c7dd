package vehicles

import (
	"context"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
)

// VehicleRepository is the vehicle storage interface of the service
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

// MaintenanceRepository is the maintenance storage interface of the service
type MaintenanceRepository interface {
	UpsertThresholds(ctx context.Context, vehicleID int64, nextServiceMileage, alertBeforeMileage int) error
	GetByVehicleID(ctx context.Context, vehicleID int64) (*domain.Maintenance, error)
	List(ctx context.Context) ([]*domain.Maintenance, error)
}

// Logger is the logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
