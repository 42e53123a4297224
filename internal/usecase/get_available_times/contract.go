package get_available_times

import (
	"context"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает активные бронирования на дату, отсортированные по времени
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
