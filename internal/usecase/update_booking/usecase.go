package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
)

// UseCase edits a booking. The conflict pre-check excludes the booking's
// own id, so keeping (or shrinking) the original selection always passes.
type UseCase struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	txManager   TransactionManager
	cache       AvailabilityCache
	catalog     *domain.SlotCatalog
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		txManager:   txManager,
		cache:       cache,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute rewrites the booking inside a serializable transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, caller=%s, vehicle=%d, date=%s",
		req.BookingID, req.CallerID, req.VehicleID, req.Date.Format(domain.DateFormat))

	// 1. Validate input against the catalog
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	slots := domain.SortSlots(uc.catalog, normalizeSlots(req.Slots))

	// 2. Load the booking and check access
	existing, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if existing.UserID != req.CallerID && req.CallerRole != domain.RoleAdmin {
		uc.logger.Warn("UpdateBooking: access denied for caller=%s on booking=%d", req.CallerID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Check the vehicle
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}
	if !vehicle.Active {
		return nil, ErrVehicleInactive
	}

	updated := &domain.Booking{
		ID:           existing.ID,
		UserID:       existing.UserID,
		UserEmail:    existing.UserEmail,
		VehicleID:    req.VehicleID,
		DriverName:   req.DriverName,
		Date:         req.Date,
		TimeSlot:     domain.JoinSlotList(slots),
		Destination:  req.Destination,
		Reason:       req.Reason,
		VehiclePlate: vehicle.Plate,
		CreatedAt:    existing.CreatedAt,
	}

	// 4. Conflict check and rewrite in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayBookings, err := uc.bookingRepo.GetByVehicleAndDate(txCtx, req.VehicleID, req.Date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Exclude the booking itself so unchanged slots never collide
		if domain.HasConflict(slots, domain.Holds(dayBookings), existing.ID) {
			uc.logger.Warn("UpdateBooking: conflict on vehicle=%d date=%s",
				req.VehicleID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		if err := uc.bookingRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", existing.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated", existing.ID)

	// 5. Invalidate both the old and the new day views
	uc.cache.Invalidate(ctx, existing.VehicleID, existing.Date)
	uc.cache.Invalidate(ctx, updated.VehicleID, updated.Date)

	return toResponse(updated, uc.catalog), nil
}

func (uc *UseCase) validate(req *Request) error {
	if req.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(req.DriverName) == "" {
		return ErrEmptyDriverName
	}
	if utf8.RuneCountInString(req.DriverName) > domain.MaxDriverNameLength {
		return fmt.Errorf("%w: driver name", ErrFieldTooLong)
	}
	if utf8.RuneCountInString(req.Destination) > domain.MaxDestinationLength {
		return fmt.Errorf("%w: destination", ErrFieldTooLong)
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason", ErrFieldTooLong)
	}

	slots := normalizeSlots(req.Slots)
	if len(slots) == 0 {
		return ErrEmptySlots
	}
	for _, label := range slots {
		if !uc.catalog.Contains(label) {
			return fmt.Errorf("%w: %q", ErrInvalidSlots, label)
		}
	}

	return nil
}

// normalizeSlots trims and deduplicates the selection, preserving order.
func normalizeSlots(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))

	for _, label := range slots {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	return out
}
