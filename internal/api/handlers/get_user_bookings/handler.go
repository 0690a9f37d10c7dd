package get_user_bookings

import (
	"net/http"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
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

// Handle GET /api/v1/users/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.UserID(r.Context())

	result, err := h.service.ListMine(r.Context(), callerID)
	if err != nil {
		h.logger.Error("GET /users/me/bookings - Failed to list bookings: caller=%s, error=%v", callerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
