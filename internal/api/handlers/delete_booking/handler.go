package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/api/middleware"
	bookingsService "github.com/avikhr/SalonBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID записи"
	msgBookingNotFound  = "запись не найдена"
	msgAccessDenied     = "нет доступа к данной записи"
)

// SuccessResponse ответ на успешную отмену записи
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

// Handle DELETE /api/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID := middleware.UserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	if err := h.bookingsService.DeleteBooking(r.Context(), id, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: id=%d, userID=%d", id, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DELETE /bookings/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: id=%d, userID=%d", id, userID)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
