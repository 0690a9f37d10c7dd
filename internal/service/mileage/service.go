package mileage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	mileageRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/mileage"
	"github.com/fleetops/FMS-CarBookingService/internal/service/mileage/models"
)

// Service records trip odometer readings and manages the personal
// mileage log.
type Service struct {
	mileageRepo     MileageRepository
	bookingRepo     BookingRepository
	maintenanceRepo MaintenanceRepository
	logger          Logger
}

// NewService creates the mileage service.
func NewService(
	mileageRepo MileageRepository,
	bookingRepo BookingRepository,
	maintenanceRepo MaintenanceRepository,
	logger Logger,
) *Service {
	return &Service{
		mileageRepo:     mileageRepo,
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

// RecordTrip stores the odometer readings of a booking and feeds the end
// mile into the vehicle's maintenance tracking. Re-submitting overwrites
// the previous reading.
func (s *Service) RecordTrip(ctx context.Context, req *models.RecordTripRequest) (*models.TripMileResponse, error) {
	s.logger.Info("RecordTrip: booking=%d caller=%s start=%d end=%d",
		req.BookingID, req.CallerID, req.StartMile, req.EndMile)

	if req.StartMile < 0 || req.EndMile <= req.StartMile {
		return nil, ErrInvalidMiles
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RecordTrip: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: RecordTrip - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.CallerID && req.CallerRole != domain.RoleAdmin {
		s.logger.Warn("RecordTrip: access denied for caller=%s on booking=%d", req.CallerID, req.BookingID)
		return nil, ErrAccessDenied
	}

	trip, err := s.mileageRepo.UpsertTripMile(ctx, &domain.TripMile{
		BookingID: req.BookingID,
		StartMile: req.StartMile,
		EndMile:   req.EndMile,
	})
	if err != nil {
		s.logger.Error("RecordTrip: failed to store trip for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: RecordTrip - repository error: %v", ErrInternal, err)
	}

	// Maintenance tracking follows the highest end mile seen; a failure
	// here does not lose the trip record.
	if err := s.maintenanceRepo.UpsertCurrentMileage(ctx, booking.VehicleID, req.EndMile); err != nil {
		s.logger.Error("RecordTrip: failed to update vehicle id=%d mileage: %v", booking.VehicleID, err)
	}

	s.logger.Info("RecordTrip: booking=%d total=%d recorded", req.BookingID, trip.TotalMile)
	return models.FromDomainTripMile(trip), nil
}

// CreateMileage inserts a personal mileage record for the caller.
func (s *Service) CreateMileage(ctx context.Context, req *models.SaveMileageRequest) (*models.MileageResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	record, err := s.mileageRepo.CreateMileage(ctx, &domain.Mileage{
		UserID:       req.CallerID,
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Date:         req.Date,
		Location:     strings.TrimSpace(req.Location),
		StartMile:    req.StartMile,
		EndMile:      req.EndMile,
		Remark:       strings.TrimSpace(req.Remark),
	})
	if err != nil {
		s.logger.Error("CreateMileage: repository error for user=%s: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: CreateMileage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMileage: record id=%d created for user=%s", record.ID, req.CallerID)
	return models.FromDomainMileage(record), nil
}

// ListMileages returns the caller's records; admins see everyone's.
func (s *Service) ListMileages(ctx context.Context, callerID uuid.UUID, callerRole string) (*models.MileageListResponse, error) {
	var filter *uuid.UUID
	if callerRole != domain.RoleAdmin {
		filter = &callerID
	}

	records, err := s.mileageRepo.ListMileages(ctx, filter)
	if err != nil {
		s.logger.Error("ListMileages: repository error for user=%s: %v", callerID, err)
		return nil, fmt.Errorf("%w: ListMileages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMileageList(records), nil
}

// UpdateMileage rewrites a record the caller owns.
func (s *Service) UpdateMileage(ctx context.Context, id int64, req *models.SaveMileageRequest) (*models.MileageResponse, error) {
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.getOwned(ctx, id, req.CallerID, req.CallerRole, "UpdateMileage")
	if err != nil {
		return nil, err
	}

	record := &domain.Mileage{
		ID:           existing.ID,
		UserID:       existing.UserID,
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Date:         req.Date,
		Location:     strings.TrimSpace(req.Location),
		StartMile:    req.StartMile,
		EndMile:      req.EndMile,
		Remark:       strings.TrimSpace(req.Remark),
	}

	if err := s.mileageRepo.UpdateMileage(ctx, record); err != nil {
		if errors.Is(err, mileageRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("UpdateMileage: repository error for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMileage - repository error: %v", ErrInternal, err)
	}

	record.CreatedAt = existing.CreatedAt
	return models.FromDomainMileage(record), nil
}

// DeleteMileage removes a record the caller owns.
func (s *Service) DeleteMileage(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) error {
	if _, err := s.getOwned(ctx, id, callerID, callerRole, "DeleteMileage"); err != nil {
		return err
	}

	if err := s.mileageRepo.DeleteMileage(ctx, id); err != nil {
		if errors.Is(err, mileageRepo.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		s.logger.Error("DeleteMileage: repository error for record id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteMileage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteMileage: record id=%d deleted", id)
	return nil
}

func (s *Service) getOwned(ctx context.Context, id int64, callerID uuid.UUID, callerRole, op string) (*domain.Mileage, error) {
	record, err := s.mileageRepo.GetMileageByID(ctx, id)
	if err != nil {
		if errors.Is(err, mileageRepo.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("%s: repository error for record id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if record.UserID != callerID && callerRole != domain.RoleAdmin {
		s.logger.Warn("%s: access denied for caller=%s on record id=%d", op, callerID, id)
		return nil, ErrAccessDenied
	}

	return record, nil
}

func validateSaveRequest(req *models.SaveMileageRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EmployeeName) == "" {
		return fmt.Errorf("%w: employee name is required", ErrInvalidInput)
	}
	if req.StartMile < 0 || req.EndMile <= req.StartMile {
		return ErrInvalidMiles
	}
	return nil
}
