package create_booking

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/api/middleware"
	createBooking "github.com/avikhr/SalonBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgUserNotFound       = "пользователь не найден"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgInvalidTimeSlot    = "время не попадает в сетку расписания"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user=%d, date=%s, time=%s", userID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user=%d, time=%s", userID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, user=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
