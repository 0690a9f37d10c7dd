package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	getAvailability "github.com/fleetops/FMS-CarBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidVehicleID = "รหัสรถไม่ถูกต้อง"
	msgInvalidDate      = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgVehicleNotFound  = "ไม่พบรถ"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotResponse is one catalog slot of the day view.
type SlotResponse struct {
	Label  string `json:"label"`
	Free   bool   `json:"free"`
	HeldBy string `json:"held_by,omitempty"`
}

// AvailabilityResponse is the HTTP response body.
type AvailabilityResponse struct {
	VehicleID int64          `json:"vehicle_id"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// Handle GET /api/v1/vehicles/{vehicleId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := strconv.ParseInt(mux.Vars(r)["vehicleId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		VehicleID: vehicleID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vehicles/%d/availability - Failed: %v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			Label:  s.Label,
			Free:   s.Free,
			HeldBy: s.HeldBy,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		VehicleID: result.VehicleID,
		Date:      result.Date.Format(domain.DateFormat),
		Slots:     slots,
	})
}
