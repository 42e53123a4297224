package generate_report

import (
	"errors"
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	reportsService "github.com/avikhr/SalonBookingService/internal/service/reports"
	"github.com/avikhr/SalonBookingService/internal/service/reports/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidReportType  = "неизвестный тип отчета"
	msgInvalidPeriod      = "некорректный период отчета"
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

// Handle POST /api/reports/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateReportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reports/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.reportsService.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reportsService.ErrInvalidReportType):
			h.logger.Warn("POST /reports/generate - Invalid report type: %s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidReportType)
		case errors.Is(err, reportsService.ErrInvalidPeriod):
			h.logger.Warn("POST /reports/generate - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("POST /reports/generate - Failed: type=%s, error=%v", req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reports/generate - Report generated: type=%s, id=%d", req.Type, resp.Report.ID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
