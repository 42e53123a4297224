package get_current_user

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/api/middleware"
	authService "github.com/avikhr/SalonBookingService/internal/service/auth"
)

const msgUserNotFound = "пользователь не найден"

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

// Handle GET /api/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	result, err := h.authService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - User not found: id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /auth/me - Failed: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
