package login

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	authService "github.com/avikhr/SalonBookingService/internal/service/auth"
	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь не найден"
	msgInvalidPassword    = "неверный пароль"
	msgInvalidInput       = "телефон/email и пароль обязательны"
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

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserNotFound):
			h.logger.Warn("POST /auth/login - User not found: %s", req.PhoneOrEmail)
			handlers.RespondUnauthorized(w, msgUserNotFound)
		case errors.Is(err, authService.ErrInvalidPassword):
			h.logger.Warn("POST /auth/login - Invalid password: %s", req.PhoneOrEmail)
			handlers.RespondUnauthorized(w, msgInvalidPassword)
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /auth/login - Failed to login: %s, error=%v", req.PhoneOrEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
