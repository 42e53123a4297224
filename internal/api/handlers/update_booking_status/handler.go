package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	bookingsService "github.com/avikhr/SalonBookingService/internal/service/bookings"
	"github.com/avikhr/SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID записи"
	msgBookingNotFound    = "запись не найдена"
	msgInvalidStatus      = "недопустимый статус записи"
)

// SuccessResponse ответ на успешное обновление статуса
type SuccessResponse struct {
	Success bool `json:"success"`
}

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

// Handle PUT /api/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.bookingsService.UpdateStatus(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated: id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
