package register

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	authService "github.com/avikhr/SalonBookingService/internal/service/auth"
	"github.com/avikhr/SalonBookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserExists         = "пользователь с таким email или телефоном уже существует"
	msgInvalidInput       = "некорректные данные регистрации"
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

// Handle POST /api/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserExists):
			h.logger.Warn("POST /auth/register - User exists: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgUserExists)
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
