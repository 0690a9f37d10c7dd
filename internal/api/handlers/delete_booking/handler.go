package delete_booking

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
	msgAccessDenied     = "ไม่มีสิทธิ์ยกเลิกการจองนี้"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	callerID := middleware.UserID(r.Context())
	callerRole := middleware.UserRole(r.Context())

	if err := h.service.Delete(r.Context(), bookingID, callerID, callerRole); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%d - Access denied: caller=%s", bookingID, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to delete booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking deleted by caller=%s", bookingID, callerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
