package unlink_telegram

import (
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/api/middleware"
)

type Handler struct {
	telegramService TelegramService
	logger          Logger
}

func NewHandler(telegramService TelegramService, logger Logger) *Handler {
	return &Handler{
		telegramService: telegramService,
		logger:          logger,
	}
}

// Handle POST /api/telegram/unlink
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	resp, err := h.telegramService.Unlink(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /telegram/unlink - Failed: userID=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /telegram/unlink - Telegram unlinked: userID=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
