package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
	"github.com/fleetops/FMS-CarBookingService/internal/service/vehicles/models"
)

// Service manages the fleet and its maintenance thresholds.
type Service struct {
	vehicleRepo     VehicleRepository
	maintenanceRepo MaintenanceRepository
	logger          Logger
}

// NewService creates the vehicles service.
func NewService(
	vehicleRepo VehicleRepository,
	maintenanceRepo MaintenanceRepository,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

// List returns the fleet. activeOnly hides retired vehicles for the
// booking form; the admin screen passes false.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicleList(vehicles), nil
}

// GetByID fetches one vehicle.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// Create registers a new vehicle.
func (s *Service) Create(ctx context.Context, req *models.SaveVehicleRequest) (*models.VehicleResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		Plate:  strings.TrimSpace(req.Plate),
		Model:  strings.TrimSpace(req.Model),
		Active: req.Active,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrPlateTaken) {
			s.logger.Warn("Create: plate %q already registered", req.Plate)
			return nil, ErrPlateTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle id=%d plate=%s registered", created.ID, created.Plate)
	return models.FromDomainVehicle(created), nil
}

// Update rewrites a vehicle.
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveVehicleRequest) (*models.VehicleResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ID:     id,
		Plate:  strings.TrimSpace(req.Plate),
		Model:  strings.TrimSpace(req.Model),
		Active: req.Active,
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
			return nil, ErrVehicleNotFound
		case errors.Is(err, vehicleRepo.ErrPlateTaken):
			return nil, ErrPlateTaken
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a vehicle. Bookings keep their denormalized plate.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%d removed", id)
	return nil
}

// SetMaintenance stores the service thresholds of one vehicle.
func (s *Service) SetMaintenance(ctx context.Context, req *models.SetMaintenanceRequest) error {
	if req.NextServiceMileage <= 0 || req.AlertBeforeMileage < 0 {
		return fmt.Errorf("%w: maintenance thresholds must be positive", ErrInvalidInput)
	}

	if _, err := s.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("SetMaintenance: repository error for vehicle id=%d: %v", req.VehicleID, err)
		return fmt.Errorf("%w: SetMaintenance - repository error: %v", ErrInternal, err)
	}

	if err := s.maintenanceRepo.UpsertThresholds(ctx, req.VehicleID, req.NextServiceMileage, req.AlertBeforeMileage); err != nil {
		s.logger.Error("SetMaintenance: failed to store thresholds for vehicle id=%d: %v", req.VehicleID, err)
		return fmt.Errorf("%w: SetMaintenance - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetMaintenance: vehicle id=%d next=%d alert=%d",
		req.VehicleID, req.NextServiceMileage, req.AlertBeforeMileage)
	return nil
}

// ListMaintenance returns the maintenance overview with plates attached.
func (s *Service) ListMaintenance(ctx context.Context) (*models.MaintenanceListResponse, error) {
	records, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListMaintenance: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMaintenance - repository error: %v", ErrInternal, err)
	}

	vehicles, err := s.vehicleRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListMaintenance: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: ListMaintenance - repository error: %v", ErrInternal, err)
	}

	plates := make(map[int64]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.Plate
	}

	out := make([]*models.MaintenanceResponse, 0, len(records))
	for _, m := range records {
		out = append(out, models.FromDomainMaintenance(m, plates[m.VehicleID]))
	}

	return &models.MaintenanceListResponse{Records: out, Total: len(out)}, nil
}

func validateSaveRequest(req *models.SaveVehicleRequest) error {
	if strings.TrimSpace(req.Plate) == "" {
		return fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	return nil
}
