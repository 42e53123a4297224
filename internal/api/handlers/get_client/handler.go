package get_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	clientsService "github.com/avikhr/SalonBookingService/internal/service/clients"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgClientNotFound  = "Клиент не найден"
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

// Handle GET /api/clients/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	resp, err := h.clientsService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: id=%d", id)
			handlers.RespondNotFound(w, msgClientNotFound)
		default:
			h.logger.Error("GET /clients/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id} - Client returned: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
