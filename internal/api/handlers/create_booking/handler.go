package create_booking

import (
	"errors"
	"net/http"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	createBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidDate        = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgDateInPast         = "ไม่สามารถจองวันที่ผ่านมาแล้วได้"
	msgEmptySlots         = "กรุณาเลือกช่วงเวลาอย่างน้อย 1 ช่วง"
	msgInvalidSlots       = "ช่วงเวลาที่เลือกไม่ถูกต้อง"
	msgEmptyDriverName    = "กรุณาระบุชื่อผู้ขับ"
	msgFieldTooLong       = "ข้อมูลยาวเกินกำหนด"
	msgVehicleNotFound    = "ไม่พบรถที่เลือก"
	msgVehicleInactive    = "รถคันนี้ไม่พร้อมใช้งาน"
	msgSlotConflict       = "ช่วงเวลานี้ถูกจองแล้ว"
	msgSlotTaken          = "ช่วงเวลานี้เพิ่งถูกจองไป กรุณาเลือกช่วงเวลาใหม่"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.UserID(r.Context())
	userEmail := middleware.UserEmail(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(userID, userEmail)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptySlots):
			handlers.RespondBadRequest(w, msgEmptySlots)

		case errors.Is(err, createBooking.ErrInvalidSlots):
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrEmptyDriverName):
			handlers.RespondBadRequest(w, msgEmptyDriverName)

		case errors.Is(err, createBooking.ErrFieldTooLong):
			handlers.RespondBadRequest(w, msgFieldTooLong)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleInactive):
			handlers.RespondBadRequest(w, msgVehicleInactive)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user=%s, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken in race: user=%s, vehicle_id=%d", userID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
