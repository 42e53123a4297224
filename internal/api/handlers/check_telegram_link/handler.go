package check_telegram_link

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
)

const msgMissingCode = "не указан код привязки"

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

// Handle GET /api/telegram/check-link/{code}
//
// Неизвестный код не является ошибкой: клиент опрашивает этот
// эндпоинт до завершения привязки и получает linked=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		h.logger.Warn("GET /telegram/check-link - Missing code")
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	resp, err := h.telegramService.CheckLink(r.Context(), code)
	if err != nil {
		h.logger.Error("GET /telegram/check-link - Failed: code=%s, error=%v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
