package get_available_times

import (
	"time"

	"github.com/avikhr/SalonBookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ServiceID int64     // ID услуги, на которую планируется запись
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со слотами сетки расписания
type Response struct {
	AvailableSlots []types.TimeString `json:"availableSlots"`
	AllSlots       []types.TimeString `json:"allSlots"`
}
