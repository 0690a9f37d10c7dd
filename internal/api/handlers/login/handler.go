package login

import (
	"errors"
	"net/http"

	"github.com/fleetops/FMS-CarBookingService/internal/api/handlers"
	usersService "github.com/fleetops/FMS-CarBookingService/internal/service/users"
	"github.com/fleetops/FMS-CarBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidCredentials = "อีเมลหรือรหัสผ่านไม่ถูกต้อง"
)

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

// LoginRequest is the HTTP request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &models.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usersService.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
