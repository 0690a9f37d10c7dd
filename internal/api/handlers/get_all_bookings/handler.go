package get_all_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	bookingsService "github.com/fleetops/FMS-CarBookingService/internal/service/bookings"
	"github.com/fleetops/FMS-CarBookingService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "ตัวกรองไม่ถูกต้อง"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?vehicle_id=&start_date=&end_date=
// Admin only, enforced by the route middleware.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if raw := query.Get("vehicle_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.VehicleID = &id
	}

	if raw := query.Get("start_date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.StartDate = &date
	}

	if raw := query.Get("end_date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.EndDate = &date
	}

	result, err := h.service.ListAll(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
