package vehicles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	vehiclesService "github.com/fleetops/FMS-CarBookingService/internal/service/vehicles"
	"github.com/fleetops/FMS-CarBookingService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidVehicleID   = "รหัสรถไม่ถูกต้อง"
	msgVehicleNotFound    = "ไม่พบรถ"
	msgPlateTaken         = "ทะเบียนรถนี้ถูกลงทะเบียนแล้ว"
	msgInvalidInput       = "ข้อมูลรถไม่ถูกต้อง"
)

// Handler serves the fleet and maintenance endpoints.
type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SaveVehicleRequest is the HTTP body of create and update.
type SaveVehicleRequest struct {
	Plate  string `json:"plate"`
	Model  string `json:"model"`
	Active bool   `json:"active"`
}

// SetMaintenanceRequest is the HTTP body of the threshold endpoint.
type SetMaintenanceRequest struct {
	NextServiceMileage int `json:"next_service_mileage"`
	AlertBeforeMileage int `json:"alert_before_mileage"`
}

// List GET /api/v1/vehicles?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/vehicles/{vehicleId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, vehiclesService.ErrVehicleNotFound) {
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("GET /vehicles/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/vehicles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.SaveVehicleRequest{
		Plate:  req.Plate,
		Model:  req.Model,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrPlateTaken):
			handlers.RespondError(w, http.StatusConflict, msgPlateTaken)
		case errors.Is(err, vehiclesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: id=%d plate=%s", result.ID, result.Plate)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/vehicles/{vehicleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	var req SaveVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &models.SaveVehicleRequest{
		Plate:  req.Plate,
		Model:  req.Model,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)
		case errors.Is(err, vehiclesService.ErrPlateTaken):
			handlers.RespondError(w, http.StatusConflict, msgPlateTaken)
		case errors.Is(err, vehiclesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /vehicles/%d - Failed to update vehicle: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, vehiclesService.ErrVehicleNotFound) {
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("DELETE /vehicles/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /vehicles/%d - Vehicle deleted", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// SetMaintenance PUT /api/v1/vehicles/{vehicleId}/maintenance
func (h *Handler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}

	var req SetMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetMaintenance(r.Context(), &models.SetMaintenanceRequest{
		VehicleID:          id,
		NextServiceMileage: req.NextServiceMileage,
		AlertBeforeMileage: req.AlertBeforeMileage,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehiclesService.ErrVehicleNotFound):
			handlers.RespondNotFound(w, msgVehicleNotFound)
		case errors.Is(err, vehiclesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /vehicles/%d/maintenance - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// ListMaintenance GET /api/v1/maintenance
func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMaintenance(r.Context())
	if err != nil {
		h.logger.Error("GET /maintenance - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) vehicleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["vehicleId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return 0, false
	}
	return id, true
}
