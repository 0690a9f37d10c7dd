package mileage

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	mileageService "github.com/fleetops/FMS-CarBookingService/internal/service/mileage"
	"github.com/fleetops/FMS-CarBookingService/internal/service/mileage/models"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidBookingID   = "รหัสการจองไม่ถูกต้อง"
	msgInvalidRecordID    = "รหัสบันทึกไม่ถูกต้อง"
	msgInvalidDate        = "รูปแบบวันที่ไม่ถูกต้อง (YYYY-MM-DD)"
	msgInvalidMiles       = "เลขไมล์สิ้นสุดต้องมากกว่าเลขไมล์เริ่มต้น"
	msgInvalidInput       = "ข้อมูลบันทึกเลขไมล์ไม่ถูกต้อง"
	msgBookingNotFound    = "ไม่พบการจอง"
	msgRecordNotFound     = "ไม่พบบันทึกเลขไมล์"
	msgAccessDenied       = "คุณไม่มีสิทธิ์เข้าถึงข้อมูลนี้"
)

// Handler serves trip odometer submission and the personal mileage log.
type Handler struct {
	service MileageService
	logger  Logger
}

func NewHandler(service MileageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RecordTripRequest is the HTTP body of the booking odometer endpoint.
type RecordTripRequest struct {
	StartMile int `json:"start_mile"`
	EndMile   int `json:"end_mile"`
}

// SaveMileageRequest is the HTTP body of the personal log endpoints.
type SaveMileageRequest struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	StartMile    int    `json:"start_mile"`
	EndMile      int    `json:"end_mile"`
	Remark       string `json:"remark"`
}

// RecordTrip POST /api/v1/bookings/{bookingId}/miles
func (h *Handler) RecordTrip(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RecordTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RecordTrip(r.Context(), &models.RecordTripRequest{
		BookingID:  bookingID,
		CallerID:   middleware.UserID(r.Context()),
		CallerRole: middleware.UserRole(r.Context()),
		StartMile:  req.StartMile,
		EndMile:    req.EndMile,
	})
	if err != nil {
		switch {
		case errors.Is(err, mileageService.ErrInvalidMiles):
			handlers.RespondBadRequest(w, msgInvalidMiles)
		case errors.Is(err, mileageService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, mileageService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("POST /bookings/%d/miles - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/mileages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMileages(r.Context(), middleware.UserID(r.Context()), middleware.UserRole(r.Context()))
	if err != nil {
		h.logger.Error("GET /mileages - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/mileages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.saveRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.CreateMileage(r.Context(), req)
	if err != nil {
		h.respondSaveError(w, "POST /mileages", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/mileages/{recordId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}

	req, ok := h.saveRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.UpdateMileage(r.Context(), id, req)
	if err != nil {
		h.respondSaveError(w, "PUT /mileages", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/mileages/{recordId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}

	err := h.service.DeleteMileage(r.Context(), id, middleware.UserID(r.Context()), middleware.UserRole(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, mileageService.ErrRecordNotFound):
			handlers.RespondNotFound(w, msgRecordNotFound)
		case errors.Is(err, mileageService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DELETE /mileages/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["recordId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return 0, false
	}
	return id, true
}

func (h *Handler) saveRequest(w http.ResponseWriter, r *http.Request) (*models.SaveMileageRequest, bool) {
	var req SaveMileageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	return &models.SaveMileageRequest{
		CallerID:     middleware.UserID(r.Context()),
		CallerRole:   middleware.UserRole(r.Context()),
		EmployeeName: req.EmployeeName,
		Date:         date,
		Location:     req.Location,
		StartMile:    req.StartMile,
		EndMile:      req.EndMile,
		Remark:       req.Remark,
	}, true
}

func (h *Handler) respondSaveError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, mileageService.ErrInvalidMiles):
		handlers.RespondBadRequest(w, msgInvalidMiles)
	case errors.Is(err, mileageService.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
	case errors.Is(err, mileageService.ErrRecordNotFound):
		handlers.RespondNotFound(w, msgRecordNotFound)
	case errors.Is(err, mileageService.ErrAccessDenied):
		handlers.RespondForbidden(w, msgAccessDenied)
	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
