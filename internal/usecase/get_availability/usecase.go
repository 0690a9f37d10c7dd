package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	vehicleRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/vehicle"
)

// Request asks for the slot availability of one vehicle on one date.
type Request struct {
	VehicleID int64
	Date      time.Time
}

// SlotView is one catalog slot in the response, in catalog order.
type SlotView struct {
	Label  string
	Free   bool
	HeldBy string
}

// Response is the day view of one vehicle.
type Response struct {
	VehicleID int64
	Date      time.Time
	Slots     []SlotView
}

// UseCase renders the availability calendar cell: every catalog slot of a
// vehicle's day, free by default, with the driver name on held slots.
type UseCase struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	cache       AvailabilityCache
	catalog     *domain.SlotCatalog
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	cache AvailabilityCache,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		cache:       cache,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute returns the availability map, served from cache when possible.
// The cached view may lag a write by the TTL; the booking flow re-checks
// under a transaction, so a stale read only costs the user a retry.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetAvailability: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if avail, ok := uc.cache.Get(ctx, req.VehicleID, req.Date); ok {
		return uc.toResponse(req, avail), nil
	}

	bookings, err := uc.bookingRepo.GetByVehicleAndDate(ctx, req.VehicleID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	avail := domain.ComputeAvailability(uc.catalog, domain.Holds(bookings))
	uc.cache.Set(ctx, req.VehicleID, req.Date, avail)

	return uc.toResponse(req, avail), nil
}

func (uc *UseCase) toResponse(req *Request, avail domain.AvailabilityMap) *Response {
	slots := make([]SlotView, 0, uc.catalog.Len())
	for _, label := range uc.catalog.Labels() {
		status := avail[label]
		slots = append(slots, SlotView{
			Label:  label,
			Free:   status.Free(),
			HeldBy: status.HeldBy,
		})
	}

	return &Response{
		VehicleID: req.VehicleID,
		Date:      req.Date,
		Slots:     slots,
	}
}
