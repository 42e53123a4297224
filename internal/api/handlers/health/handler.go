package health

import (
	"net/http"
	"time"

	"github.com/avikhr/SalonBookingService/internal/api/handlers"
)

// Response состояние сервиса
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type TimeProvider interface {
	Now() time.Time
}

type Handler struct {
	timeProvider TimeProvider
}

func NewHandler(timeProvider TimeProvider) *Handler {
	return &Handler{timeProvider: timeProvider}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:    "OK",
		Timestamp: h.timeProvider.Now().UTC().Format(time.RFC3339),
	})
}
