package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	"github.com/fleetops/FMS-CarBookingService/internal/service/bookings/models"
)

// Service reads and deletes bookings. Creation and editing live in their
// own use cases because they need the transactional conflict check.
type Service struct {
	bookingRepo BookingRepository
	mileageRepo MileageRepository
	cache       AvailabilityCache
	catalog     *domain.SlotCatalog
	logger      Logger
}

// NewService creates the bookings service.
func NewService(
	bookingRepo BookingRepository,
	mileageRepo MileageRepository,
	cache AvailabilityCache,
	catalog *domain.SlotCatalog,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mileageRepo: mileageRepo,
		cache:       cache,
		catalog:     catalog,
		logger:      logger,
	}
}

// GetByID fetches one booking. Non-admin callers only see their own.
func (s *Service) GetByID(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for caller=%s", id, callerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != callerID && callerRole != domain.RoleAdmin {
		s.logger.Warn("GetByID: access denied for caller=%s to booking id=%d", callerID, id)
		return nil, ErrAccessDenied
	}

	trips, err := s.mileageRepo.GetTripMilesByBookingIDs(ctx, []int64{id})
	if err != nil {
		s.logger.Error("GetByID: failed to get trip miles for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - trip miles: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.catalog, trips[id]), nil
}

// ListMine returns the caller's bookings, newest date first.
func (s *Service) ListMine(ctx context.Context, callerID uuid.UUID) (*models.BookingListResponse, error) {
	s.logger.Info("ListMine: fetching bookings for user=%s", callerID)

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{UserID: &callerID})
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", callerID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	return s.toList(ctx, bookings, "ListMine")
}

// ListAll returns bookings across users with optional filters. Admin only,
// enforced at the route level.
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching bookings (vehicle=%v)", req.VehicleID)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return s.toList(ctx, bookings, "ListAll")
}

// Delete removes a booking and frees its slots. Non-admin callers can only
// delete their own.
func (s *Service) Delete(ctx context.Context, id int64, callerID uuid.UUID, callerRole string) error {
	s.logger.Info("Delete: deleting booking id=%d by caller=%s", id, callerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != callerID && callerRole != domain.RoleAdmin {
		s.logger.Warn("Delete: access denied for caller=%s to booking id=%d", callerID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, booking.VehicleID, booking.Date)

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) toList(ctx context.Context, bookings []*domain.Booking, op string) (*models.BookingListResponse, error) {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	trips, err := s.mileageRepo.GetTripMilesByBookingIDs(ctx, ids)
	if err != nil {
		s.logger.Error("%s: failed to get trip miles: %v", op, err)
		return nil, fmt.Errorf("%w: %s - trip miles: %v", ErrInternal, op, err)
	}

	return models.FromDomainBookingList(bookings, s.catalog, trips), nil
}
