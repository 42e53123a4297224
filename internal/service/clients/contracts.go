package clients

import (
	"context"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetClients(ctx context.Context) ([]*domain.ClientSummary, error)
	GetClientDetails(ctx context.Context, id int64) (*domain.ClientDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
