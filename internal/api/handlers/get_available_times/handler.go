package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/domain"
	getAvailableTimes "github.com/avikhr/SalonBookingService/internal/usecase/get_available_times"
)

const (
	msgMissingParams   = "дата и ID услуги обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/available-times?date=YYYY-MM-DD&serviceId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	serviceParam := r.URL.Query().Get("serviceId")

	if dateParam == "" || serviceParam == "" {
		h.logger.Warn("GET /bookings/available-times - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /bookings/available-times - Invalid date: %s", dateParam)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceID, err := strconv.ParseInt(serviceParam, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/available-times - Invalid serviceId: %s", serviceParam)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrServiceNotFound):
			h.logger.Warn("GET /bookings/available-times - Service not found: id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)
		default:
			h.logger.Error("GET /bookings/available-times - Failed: service=%d, date=%s, error=%v",
				serviceID, dateParam, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
