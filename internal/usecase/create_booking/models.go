package create_booking

import (
	"time"

	"github.com/avikhr/SalonBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID               int64            // ID пользователя из токена
	ServiceID            int64            // ID услуги
	Date                 time.Time        // Дата бронирования (без времени)
	Time                 types.TimeString // Время начала слота (например, "10:00")
	Comment              *string          // Комментарий клиента (опционально)
	TelegramNotification bool             // Отправлять ли уведомления в Telegram
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"userId"`
	ServiceID            int64     `json:"serviceId"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	Status               string    `json:"status"`
	Comment              *string   `json:"comment,omitempty"`
	TelegramNotification bool      `json:"telegramNotification"`
	CreatedAt            time.Time `json:"createdAt"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
}
