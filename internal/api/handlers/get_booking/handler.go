package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	bookingsService "github.com/fleetops/FMS-CarBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "รหัสการจองไม่ถูกต้อง"
	msgBookingNotFound  = "ไม่พบการจอง"
	msgAccessDenied     = "ไม่มีสิทธิ์ดูการจองนี้"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	callerID := middleware.UserID(r.Context())
	callerRole := middleware.UserRole(r.Context())

	booking, err := h.service.GetByID(r.Context(), bookingID, callerID, callerRole)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /bookings/%d - Access denied: caller=%s", bookingID, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/%d - Failed to get booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}
