package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/booking"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
	"github.com/fleetops/FMS-CarBookingService/internal/integrations/linenotify"
)

// UseCase creates a booking.
//
// Conflicts are handled on two levels. Inside the serializable transaction
// the day's bookings are read with a row lock and checked in memory, which
// catches the common case and yields a friendly error. The unique index on
// booking_slots remains the authority: if a concurrent writer slips past
// the pre-check the insert fails and maps to ErrSlotTaken.
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	txManager    TransactionManager
	notifier     Notifier
	cache        AvailabilityCache
	catalog      *domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	txManager TransactionManager,
	notifier Notifier,
	cache AvailabilityCache,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		txManager:    txManager,
		notifier:     notifier,
		cache:        cache,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates the booking inside a serializable transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, vehicle=%d, date=%s, slots=%d",
		req.UserID, req.VehicleID, req.Date.Format(domain.DateFormat), len(req.Slots))

	// 1. Validate input against the catalog and today's date
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := validateRequest(req, uc.catalog, today); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Canonicalize the selection: trim, dedupe, catalog order
	slots := domain.SortSlots(uc.catalog, normalizeSlots(req.Slots))

	// 3. Check the vehicle
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}
	if !vehicle.Active {
		uc.logger.Warn("CreateBooking: vehicle id=%d is inactive", req.VehicleID)
		return nil, ErrVehicleInactive
	}

	var result *domain.Booking

	// 4. Conflict check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Read the day's bookings with a row lock
		dayBookings, err := uc.bookingRepo.GetByVehicleAndDate(txCtx, req.VehicleID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Advisory pre-check against the held slots
		if domain.HasConflict(slots, domain.Holds(dayBookings), 0) {
			uc.logger.Warn("CreateBooking: conflict on vehicle=%d date=%s",
				req.VehicleID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 4.3. Insert the booking and its slot rows
		booking := &domain.Booking{
			UserID:       req.UserID,
			UserEmail:    req.UserEmail,
			VehicleID:    req.VehicleID,
			DriverName:   req.DriverName,
			Date:         req.Date,
			TimeSlot:     domain.JoinSlotList(slots),
			Destination:  req.Destination,
			Reason:       req.Reason,
			VehiclePlate: vehicle.Plate,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost the race on vehicle=%d date=%s",
					req.VehicleID, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created", result.ID)

	// 5. Post-commit side effects: cache and LINE are best effort
	uc.cache.Invalidate(ctx, result.VehicleID, result.Date)
	uc.notify(ctx, result)

	return toResponse(result, uc.catalog), nil
}

func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) {
	if !uc.notifier.Enabled() {
		return
	}

	notice := linenotify.BookingNotice{
		DriverName:   booking.DriverName,
		VehiclePlate: booking.VehiclePlate,
		Date:         booking.Date.Format(domain.DateFormat),
		TimeSlot:     domain.MergeSlotRanges(uc.catalog, booking.TimeSlot),
		Destination:  booking.Destination,
	}

	if err := uc.notifier.BroadcastBooking(ctx, notice); err != nil {
		uc.logger.Error("CreateBooking: LINE broadcast failed for booking id=%d: %v", booking.ID, err)
	}
}
