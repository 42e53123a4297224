package admin_login

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	authService "github.com/avikhr/SalonBookingService/internal/service/auth"
	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidPassword    = "неверный пароль"
	msgInvalidInput       = "email и пароль обязательны"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/auth/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.AdminLogin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrAccessDenied):
			h.logger.Warn("POST /auth/admin/login - Access denied: %s", req.Email)
			handlers.RespondUnauthorized(w, msgAccessDenied)
		case errors.Is(err, authService.ErrInvalidPassword):
			h.logger.Warn("POST /auth/admin/login - Invalid password: %s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidPassword)
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/admin/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /auth/admin/login - Failed: %s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/admin/login - Admin logged in: id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
