package list_reports

import (
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	reportsService ReportsService
	logger         Logger
}

func NewHandler(reportsService ReportsService, logger Logger) *Handler {
	return &Handler{
		reportsService: reportsService,
		logger:         logger,
	}
}

// Handle GET /api/reports/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := h.reportsService.History(r.Context())

	h.logger.Info("GET /reports/history - Reports returned: count=%d", len(resp.Reports))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
