package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	updateBooking "github.com/fleetops/FMS-CarBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidBookingID   = "รหัสการจองไม่ถูกต้อง"
	msgInvalidDate        = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgEmptySlots         = "กรุณาเลือกช่วงเวลาอย่างน้อย 1 ช่วง"
	msgInvalidSlots       = "ช่วงเวลาที่เลือกไม่ถูกต้อง"
	msgEmptyDriverName    = "กรุณาระบุชื่อผู้ขับ"
	msgFieldTooLong       = "ข้อมูลยาวเกินกำหนด"
	msgBookingNotFound    = "ไม่พบการจอง"
	msgAccessDenied       = "ไม่มีสิทธิ์แก้ไขการจองนี้"
	msgVehicleNotFound    = "ไม่พบรถที่เลือก"
	msgVehicleInactive    = "รถคันนี้ไม่พร้อมใช้งาน"
	msgSlotConflict       = "ช่วงเวลานี้ถูกจองแล้ว"
	msgSlotTaken          = "ช่วงเวลานี้เพิ่งถูกจองไป กรุณาเลือกช่วงเวลาใหม่"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID := middleware.UserID(r.Context())
	callerRole := middleware.UserRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(bookingID, callerID, callerRole)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/%d - Access denied: caller=%s", bookingID, callerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateBooking.ErrEmptySlots):
			handlers.RespondBadRequest(w, msgEmptySlots)

		case errors.Is(err, updateBooking.ErrInvalidSlots):
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, updateBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateBooking.ErrEmptyDriverName):
			handlers.RespondBadRequest(w, msgEmptyDriverName)

		case errors.Is(err, updateBooking.ErrFieldTooLong):
			handlers.RespondBadRequest(w, msgFieldTooLong)

		case errors.Is(err, updateBooking.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, updateBooking.ErrVehicleInactive):
			handlers.RespondBadRequest(w, msgVehicleInactive)

		case errors.Is(err, updateBooking.ErrSlotConflict):
			h.logger.Warn("PUT /bookings/%d - Slot conflict", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/%d - Slot taken in race", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated by caller=%s", bookingID, callerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
