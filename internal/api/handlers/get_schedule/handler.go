package get_schedule

import (
	"net/http"
	"time"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/domain"
)

const (
	msgMissingDate = "не указан параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	bookingsService BookingsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		logger:          logger,
	}
}

// Handle GET /api/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /schedule - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %s", dateParam)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.bookingsService.GetSchedule(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule - Failed: date=%s, error=%v", dateParam, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule returned: date=%s, entries=%d", dateParam, len(resp.Schedule))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
