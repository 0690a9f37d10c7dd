package users

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	usersService "github.com/fleetops/FMS-CarBookingService/internal/service/users"
	"github.com/fleetops/FMS-CarBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidUserID      = "รหัสผู้ใช้ไม่ถูกต้อง"
	msgUserNotFound       = "ไม่พบผู้ใช้"
	msgEmailTaken         = "อีเมลนี้ถูกลงทะเบียนแล้ว"
	msgInvalidInput       = "ข้อมูลผู้ใช้ไม่ถูกต้อง"
)

// Handler serves profile administration and the caller's own profile.
type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest is the HTTP body of the admin create endpoint.
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// UpdateUserRequest is the HTTP body of the admin update endpoint.
type UpdateUserRequest struct {
	Role       string `json:"role"`
	Department string `json:"department"`
	Password   string `json:"password"`
}

// Me GET /api/v1/users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.UserID(r.Context())

	result, err := h.service.GetByID(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, usersService.ErrUserNotFound) {
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/me - Failed: caller=%s, error=%v", callerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateUserRequest{
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrEmailTaken):
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)
		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: id=%s role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &models.UpdateUserRequest{
		Role:       req.Role,
		Department: req.Department,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, usersService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /users/%s - Failed to update user: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
