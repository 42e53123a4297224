package list_services

import (
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to fetch services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
