package reports

import (
	"context"
	"time"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAllWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Service, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetClients(ctx context.Context) ([]*domain.ClientSummary, error)
}

// TimeProvider предоставляет текущее время
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
