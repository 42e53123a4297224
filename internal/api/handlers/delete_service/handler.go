package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
	catalogService "github.com/avikhr/SalonBookingService/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

// SuccessResponse ответ на успешное удаление
type SuccessResponse struct {
	Success bool `json:"success"`
}

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

// Handle DELETE /api/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
