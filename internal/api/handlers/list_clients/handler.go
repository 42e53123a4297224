package list_clients

import (
	"net/http"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
)

type Handler struct {
	clientsService ClientsService
	logger         Logger
}

func NewHandler(clientsService ClientsService, logger Logger) *Handler {
	return &Handler{
		clientsService: clientsService,
		logger:         logger,
	}
}

// Handle GET /api/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientsService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Clients returned: count=%d", len(resp.Clients))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
