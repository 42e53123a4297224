package get_all_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	"github.com/avikhr/SalonBookingService/internal/domain"
	bookingsService "github.com/avikhr/SalonBookingService/internal/service/bookings"
	"github.com/avikhr/SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/bookings/all?startDate=...&endDate=...&status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings/all - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.bookingsService.GetAllBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/all - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /bookings/all - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.GetAllBookingsRequest, error) {
	req := models.GetAllBookingsRequest{}
	query := r.URL.Query()

	if v := query.Get("startDate"); v != "" {
		start, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if v := query.Get("endDate"); v != "" {
		end, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	return &req, nil
}
